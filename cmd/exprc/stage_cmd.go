package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"exprc/internal/diag"
	"exprc/internal/diagfmt"
	"exprc/internal/driver"
	"exprc/internal/pipeline"
	"exprc/internal/source"
	"exprc/internal/ui"
)

// stageOutput renders one file's result. text serves pretty and tree,
// value serves the structured formats.
type stageOutput struct {
	text  func(w io.Writer, r *driver.Result, format diagfmt.Format) error
	value func(r *driver.Result) any
}

// resolveFormat picks --format when given, otherwise [output].format when
// this command supports it, otherwise pretty.
func resolveFormat(cmd *cobra.Command, allowed ...diagfmt.Format) (diagfmt.Format, error) {
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && state != nil {
		if f, err := diagfmt.ParseFormat(state.manifest.Output.Format, allowed...); err == nil {
			return f, nil
		}
		return diagfmt.FormatPretty, nil
	}
	return diagfmt.ParseFormat(value, allowed...)
}

// runStage runs the pipeline up to last over a file or directory, prints
// diagnostics to stderr and the stage output to stdout.
func runStage(cmd *cobra.Command, path string, last pipeline.Stage, format diagfmt.Format, opts driver.Options, out stageOutput) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if !st.IsDir() {
		res, err := driver.RunFile(cmd.Context(), path, last, opts)
		if err != nil {
			return err
		}
		printDiagnostics(stderr, res.Bag, res.FileSet)
		if isStructured(format) {
			if err := diagfmt.Encode(stdout, format, out.value(res)); err != nil {
				return err
			}
		} else if err := out.text(stdout, res, format); err != nil {
			return err
		}
		return finishResults(stderr, []*driver.Result{res})
	}

	fileSet, results, err := runDir(cmd, path, last, opts)
	if err != nil {
		return fmt.Errorf("processing %s failed: %w", path, err)
	}
	for _, r := range results {
		printDiagnostics(stderr, r.Bag, fileSet)
	}

	if isStructured(format) {
		byPath := make(map[string]any, len(results))
		for _, r := range results {
			if r.File() == nil {
				byPath[r.Path] = nil
				continue
			}
			byPath[r.Path] = out.value(r)
		}
		if err := diagfmt.Encode(stdout, format, byPath); err != nil {
			return err
		}
		return finishResults(stderr, results)
	}

	for idx, r := range results {
		if !state.quiet {
			if _, err := fmt.Fprintf(stdout, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if r.File() != nil {
			if err := out.text(stdout, r, format); err != nil {
				return err
			}
		}
		if !state.quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(stdout); err != nil {
				return err
			}
		}
	}
	return finishResults(stderr, results)
}

// runDir drives driver.RunDir, behind the progress view when the UI is on.
func runDir(cmd *cobra.Command, dir string, last pipeline.Stage, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 || state.quiet || !shouldUseTUI(state.ui) {
		return driver.RunDir(cmd.Context(), dir, last, opts)
	}

	display := make([]string, len(files))
	for i, f := range files {
		display[i] = driver.DisplayPath(dir, f)
	}

	var (
		fileSet *source.FileSet
		results []*driver.Result
	)
	title := fmt.Sprintf("%s %s", cmd.Name(), dir)
	err = ui.RunProgress(cmd.OutOrStdout(), title, display, last, func(sink pipeline.ProgressSink) error {
		opts.Progress = sink
		var runErr error
		fileSet, results, runErr = driver.RunDir(cmd.Context(), dir, last, opts)
		return runErr
	})
	return fileSet, results, err
}

func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	full := bag.Len() >= int(bag.Cap())
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:       state.colorErr,
		Context:     2,
		ShowNotes:   true,
		MinSeverity: state.minSeverity,
	})
	if full {
		fmt.Fprintf(w, "note: stopped after %d diagnostics (raise --max-diagnostics)\n", bag.Cap())
	}
}

// finishResults prints the summary line and applies --strict.
func finishResults(w io.Writer, results []*driver.Result) error {
	all := diag.NewBag(0)
	for _, r := range results {
		all.Merge(r.Bag)
	}
	if !state.quiet {
		diagfmt.Summary(w, all.Count(diag.SevError), all.Count(diag.SevWarning), state.colorErr)
	}
	if state.strict && all.HasErrors() {
		return errStrict
	}
	return nil
}

func isStructured(f diagfmt.Format) bool {
	switch f {
	case diagfmt.FormatJSON, diagfmt.FormatYAML, diagfmt.FormatMsgpack:
		return true
	default:
		return false
	}
}
