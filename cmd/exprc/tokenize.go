package main

import (
	"io"

	"github.com/spf13/cobra"

	"exprc/internal/diagfmt"
	"exprc/internal/driver"
	"exprc/internal/pipeline"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.expr|directory>",
	Short: "Tokenize an expression source file or directory",
	Long:  `Tokenize breaks a source file, or every *.expr file in a directory, into tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(cmd, diagfmt.FormatPretty, diagfmt.FormatJSON, diagfmt.FormatYAML, diagfmt.FormatMsgpack)
	if err != nil {
		return err
	}
	// tokenize показывает поток целиком, включая trivia
	return runStage(cmd, args[0], pipeline.StageTokenize, format, state.driverOptions(), stageOutput{
		text: func(w io.Writer, r *driver.Result, _ diagfmt.Format) error {
			return diagfmt.FormatTokensPretty(w, r.Tokens, r.FileSet)
		},
		value: func(r *driver.Result) any {
			return diagfmt.BuildTokensOutput(r.Tokens)
		},
	})
}
