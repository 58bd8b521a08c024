package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdb/askdb/config"
	"github.com/askdb/askdb/db"
)

// initdb only needs the database, not a provider, so it does not go
// through bootstrap — the seed data is useful without any API key.
var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create and seed the database file, then print its schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := db.Open(cmd.Context(), cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
		}
		defer store.Close()

		schema, err := store.SchemaInfo(cmd.Context(), "")
		if err != nil {
			return err
		}

		fmt.Printf("database ready at %s\n\n%s", cfg.DBPath, schema)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
