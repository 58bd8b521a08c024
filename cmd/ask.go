package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askdb/askdb/agent"
	"github.com/askdb/askdb/applog"
)

var askShowSQL bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, store, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		defer applog.Close()

		question := strings.Join(args, " ")
		turn := a.Ask(cmd.Context(), question)

		if askShowSQL && turn.GeneratedSQL != "" {
			fmt.Println("SQL:", turn.GeneratedSQL)
		}
		fmt.Println(turn.Answer)

		if turn.Outcome != agent.OutcomeAnswered {
			return fmt.Errorf("turn ended: %s", turn.Outcome)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askShowSQL, "sql", false, "print the generated SQL before the answer")
	rootCmd.AddCommand(askCmd)
}
