// Package cmd contains all Cobra commands for askdb.
//
// Design decision: the root command launches the interactive ask loop
// directly. Provider and database settings come from config/env, not
// CLI flags. Running `askdb` with no arguments starts the loop.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askdb/askdb/agent"
	"github.com/askdb/askdb/ai"
	"github.com/askdb/askdb/applog"
	"github.com/askdb/askdb/config"
	"github.com/askdb/askdb/db"
	"github.com/askdb/askdb/tui"
)

var rootCmd = &cobra.Command{
	Use:   "askdb",
	Short: "Ask a SQLite database questions in plain English",
	Long: `askdb translates natural-language questions into SQL, runs them
against a small seeded SQLite database, and answers in English:

  • Interactive ask loop (default, 'quit' exits)
  • askdb serve  — single-page web interface
  • askdb ask    — one-shot question from the command line
  • askdb initdb — create and seed the database file

Requires an API key for the configured language-model provider
(e.g. OPENAI_API_KEY).`,
	// Running with no subcommand launches the ask loop.
	RunE: func(cmd *cobra.Command, args []string) error {
		a, store, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		defer applog.Close()

		return tui.Start(a)
	},
}

func init() {
	rootCmd.SilenceUsage = true
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads config, verifies credentials, opens (and seeds) the
// database, and wires the agent. Credential problems are fatal here,
// before any user interaction starts.
func bootstrap(ctx context.Context) (*agent.Agent, *db.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return nil, nil, nil, err
	}

	store, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}

	applog.Info("started: provider=%s db=%s", provider.Name(), cfg.DBPath)
	return agent.New(store, provider), store, cfg, nil
}
