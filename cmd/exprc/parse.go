package main

import (
	"io"

	"github.com/spf13/cobra"

	"exprc/internal/diagfmt"
	"exprc/internal/driver"
	"exprc/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.expr|directory>",
	Short: "Parse an expression source file or directory and output the AST",
	Long:  `Parse reduces a source file, or every *.expr file in a directory, to syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json|yaml|msgpack)")
	parseCmd.Flags().Bool("keep-trivia", false, "feed whitespace and comments to the parser")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(cmd, diagfmt.FormatPretty, diagfmt.FormatTree, diagfmt.FormatJSON, diagfmt.FormatYAML, diagfmt.FormatMsgpack)
	if err != nil {
		return err
	}
	opts := state.driverOptions()
	if err := applyKeepTrivia(cmd, &opts); err != nil {
		return err
	}
	return runStage(cmd, args[0], pipeline.StageParse, format, opts, stageOutput{
		text: func(w io.Writer, r *driver.Result, f diagfmt.Format) error {
			return diagfmt.FormatAST(w, r.Nodes, r.FileSet, f)
		},
		value: func(r *driver.Result) any {
			return diagfmt.BuildASTOutputs(r.Nodes)
		},
	})
}

func applyKeepTrivia(cmd *cobra.Command, opts *driver.Options) error {
	keep, err := cmd.Flags().GetBool("keep-trivia")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("keep-trivia") {
		opts.StripTrivia = !keep
	}
	return nil
}
