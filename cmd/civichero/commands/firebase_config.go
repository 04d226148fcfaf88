package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// firebaseConfigCmd prints the web config served at /api/firebase-config, for
// checking what FIREBASE_CONFIG and the overrides resolve to.
func firebaseConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "firebase-config",
		Short: "Print the resolved Firebase web configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireFirebase(); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg.Firebase.Project.Public())
		},
	}
}
