package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"exprc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "exprc",
	Short: "Expression language front end",
	Long:  `exprc tokenizes, parses and lowers expression sources and prints every stage`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE:  setupRun,
	PersistentPostRunE: finishRun,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(irCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")
	pf.String("min-severity", "info", "hide diagnostics below this severity (info|warning|error)")
	pf.Bool("strict", false, "fail when any error diagnostic is reported")
	pf.String("ui", "auto", "progress UI for directories (auto|on|off)")
	pf.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0=off)")

	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
}

// main runs the root command. A command error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		finishOnError(rootCmd, err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
