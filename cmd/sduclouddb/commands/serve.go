package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/bootstrap"
	"github.com/sducloud/sduclouddb/internal/report"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/repository"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/service"
	"github.com/sducloud/sduclouddb/internal/storage/postgres"
)

var applySchema bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&applySchema, "apply-schema", false, "Apply the bundled schema before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, db, err := setup(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync() //nolint:errcheck

	if applySchema {
		if err := postgres.ApplySchema(ctx, db); err != nil {
			return err
		}
		logger.Info("schema applied")
	}

	publisher, closePublisher, err := bootstrap.OpenPublisher(ctx, &cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closePublisher() //nolint:errcheck

	repos := repository.New(db)
	svcs := service.New(repos, publisher, logger)

	if cfg.App.ReportSchedule != "" {
		scheduler := report.NewScheduler(repos, logger)
		if err := scheduler.Start(cfg.App.ReportSchedule); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "sduclouddb",
		Version:        cfg.App.Version,
		DB:             db,
		Services:       svcs,
		Logger:         logger,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
