package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"exprc/internal/diagfmt"
	"exprc/internal/driver"
	"exprc/internal/ir"
	"exprc/internal/pipeline"
)

var irCmd = &cobra.Command{
	Use:   "ir [flags] <file.expr|directory>",
	Short: "Lower an expression source file or directory to IR",
	Long:  `IR runs the full pipeline and prints the lowered expressions`,
	Args:  cobra.ExactArgs(1),
	RunE:  runIR,
}

func init() {
	irCmd.Flags().String("format", "pretty", "output format (pretty|tree|json|yaml|msgpack)")
	irCmd.Flags().Bool("spans", false, "print source spans in pretty output")
	irCmd.Flags().Bool("keep-trivia", false, "feed whitespace and comments to the parser")
	irCmd.Flags().Bool("cache", false, "reuse lowered IR from the disk cache")
	irCmd.Flags().String("cache-dir", "", "cache directory (default $XDG_CACHE_HOME/exprc)")
	irCmd.Flags().Bool("clear-cache", false, "drop every cache entry before running")
}

func runIR(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(cmd, diagfmt.FormatPretty, diagfmt.FormatTree, diagfmt.FormatJSON, diagfmt.FormatYAML, diagfmt.FormatMsgpack)
	if err != nil {
		return err
	}
	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return fmt.Errorf("failed to get spans flag: %w", err)
	}

	opts := state.driverOptions()
	if err := applyKeepTrivia(cmd, &opts); err != nil {
		return err
	}
	cache, err := openCache(cmd)
	if err != nil {
		return err
	}
	opts.Cache = cache

	return runStage(cmd, args[0], pipeline.StageLower, format, opts, stageOutput{
		text: func(w io.Writer, r *driver.Result, f diagfmt.Format) error {
			return diagfmt.FormatIR(w, r.IR, f, spans)
		},
		value: func(r *driver.Result) any {
			return ir.ToRecords(r.IR)
		},
	})
}

// openCache returns nil when caching is off. --cache overrides [cache].enabled,
// --cache-dir overrides [cache].dir.
func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	enabled, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if !cmd.Flags().Changed("cache") {
		enabled = state.manifest.Cache.Enabled
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if !enabled && !clearCache {
		return nil, nil
	}

	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if dir == "" {
		dir = state.manifest.Cache.Dir
	}
	cache, err := driver.OpenDiskCache("exprc", dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
		if !state.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "cache cleared: %s\n", cache.Dir())
		}
	}
	if !enabled {
		return nil, nil
	}
	return cache, nil
}
