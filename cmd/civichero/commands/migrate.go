package commands

import (
	"github.com/spf13/cobra"

	"github.com/civichero/civichero-backend/internal/storage/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the departments and locations tables",
		Long:  "Create the departments and locations tables. Needs only the DB_* settings; Firebase does not have to be configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := postgres.Open(cmd.Context(), &cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db.SQL); err != nil {
				return err
			}
			logger.Info("schema applied")
			return nil
		},
	}
}
