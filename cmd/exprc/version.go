package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"exprc/internal/diagfmt"
	"exprc/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool" yaml:"tool"`
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json|yaml)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show exprc build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := diagfmt.ParseFormat(versionFormat, diagfmt.FormatPretty, diagfmt.FormatJSON, diagfmt.FormatYAML)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if format != diagfmt.FormatPretty {
			return diagfmt.Encode(out, format, versionPayload{
				Tool:      "exprc",
				Version:   strings.TrimSpace(version.Version),
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
			})
		}

		useColor, err := readColor(colorSetting(cmd), os.Stdout)
		if err != nil {
			return err
		}
		color.NoColor = !useColor
		fmt.Fprintf(out, "exprc %s\n", version.Colored())
		for _, line := range version.Details() {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func colorSetting(cmd *cobra.Command) string {
	value, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") && state != nil {
		return state.manifest.Output.Color
	}
	return value
}
