package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/config"
	"github.com/civichero/civichero-backend/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "civichero",
		Short:         "CivicHero backend: civic reports API and live location feed",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			l, err := logging.New(loaded.App.Environment, loaded.App.LogLevel)
			if err != nil {
				return err
			}
			cfg, logger = loaded, l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.AddCommand(serveCmd(), migrateCmd(), firebaseConfigCmd())
	return root
}
