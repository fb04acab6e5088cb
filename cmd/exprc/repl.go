package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exprc/internal/repl"
	"exprc/internal/version"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive loop printing tokens, AST and IR per entry",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("history", "", "history file (default ~/.exprc_history, - disables)")
}

func runRepl(cmd *cobra.Command, _ []string) error {
	history, err := cmd.Flags().GetString("history")
	if err != nil {
		return fmt.Errorf("failed to get history flag: %w", err)
	}
	if !state.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "exprc %s repl. Commands: :tokens :ast :ir :all :quit\n", version.Version)
	}
	return repl.Start(cmd.Context(), cmd.OutOrStdout(), repl.Config{
		Options:     state.driverOptions(),
		Color:       state.colorErr,
		HistoryPath: history,
	})
}
