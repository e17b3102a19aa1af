package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/config"
	"github.com/sducloud/sduclouddb/internal/bootstrap"
	"github.com/sducloud/sduclouddb/internal/logging"
)

var (
	// Global flags
	envFile string
	dbDSN   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sduclouddb",
	Short: "Persistence service for SDUCloud projects, orgs and subsystem commands",
	Long: `sduclouddb stores projects, organisations, project/org relations and
subsystem commands in PostgreSQL and serves them over a JSON API.

Configuration is read from the environment, optionally seeded from an env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "dsn", "", "Database connection string (overrides DB_DSN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, statsCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if dbDSN != "" {
		cfg.Database.DSN = dbDSN
	}
	if verbose {
		cfg.App.LogLevel = "debug"
	}
	return cfg, nil
}

// setup loads the configuration, builds the logger and opens the database.
func setup(ctx context.Context) (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		logger.Error("database unavailable", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return nil, nil, nil, err
	}
	return cfg, logger, db, nil
}
