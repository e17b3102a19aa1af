package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sducloud/sduclouddb/internal/storage/postgres"
)

var printOnly bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tables and indexes if they do not exist",
	Long: `Applies the bundled schema. Every statement is idempotent, so the command
can be run against an existing database.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if printOnly {
			fmt.Fprint(cmd.OutOrStdout(), postgres.Schema())
			return nil
		}

		_, logger, db, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.ApplySchema(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("schema applied")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&printOnly, "print", false, "Print the schema instead of applying it")
}
