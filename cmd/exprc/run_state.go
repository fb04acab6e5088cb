package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exprc/internal/diag"
	"exprc/internal/driver"
	"exprc/internal/observ"
	"exprc/internal/prof"
	"exprc/internal/project"
)

var errStrict = errors.New("error diagnostics reported (--strict)")

// runState holds what PersistentPreRunE resolved from exprc.toml and flags.
type runState struct {
	manifest      *project.Manifest
	manifestFound bool

	colorErr       bool
	quiet          bool
	timings        bool
	strict         bool
	maxDiagnostics int
	minSeverity    diag.Severity
	jobs           int
	ui             uiMode

	timer        *observ.Timer
	traceCleanup func(failed bool)
	profiler     *prof.Session
	closed       bool
}

var state *runState

// setupRun loads the manifest, applies explicit flags over it and starts
// tracing and profiling.
func setupRun(cmd *cobra.Command, _ []string) error {
	m, found, err := project.Discover(".")
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", project.ManifestName, err)
	}

	pf := cmd.Root().PersistentFlags()
	s := &runState{manifest: m, manifestFound: found}

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if !pf.Changed("color") {
		colorFlag = m.Output.Color
	}
	if s.colorErr, err = readColor(colorFlag, os.Stderr); err != nil {
		return err
	}

	if s.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !pf.Changed("max-diagnostics") {
		s.maxDiagnostics = m.Output.MaxDiagnostics
	}
	sevFlag, err := pf.GetString("min-severity")
	if err != nil {
		return fmt.Errorf("failed to get min-severity flag: %w", err)
	}
	if !pf.Changed("min-severity") {
		sevFlag = m.Output.MinSeverity
	}
	if s.minSeverity, err = diag.ParseSeverity(sevFlag); err != nil {
		return fmt.Errorf("--min-severity: %w", err)
	}
	if s.quiet, err = pf.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = pf.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.strict, err = pf.GetBool("strict"); err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	if s.jobs, err = pf.GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := pf.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiFlag); err != nil {
		return err
	}
	if s.timings {
		s.timer = observ.NewTimer()
	}

	profCfg := prof.Config{}
	if profCfg.CPUPath, err = pf.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if profCfg.MemPath, err = pf.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if profCfg.TracePath, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if profCfg.Enabled() {
		if s.profiler, err = prof.Start(profCfg); err != nil {
			return err
		}
	}

	if s.traceCleanup, err = setupTracing(cmd); err != nil {
		_ = s.profiler.Stop()
		return err
	}

	state = s
	return nil
}

func finishRun(cmd *cobra.Command, _ []string) error {
	if state == nil {
		return nil
	}
	if state.timer != nil && !state.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), state.timer.Summary())
	}
	return state.close(false)
}

// finishOnError releases tracing and profiling; PersistentPostRunE is not
// called when the command fails.
func finishOnError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	if state != nil {
		_ = state.close(true)
	}
}

func (s *runState) close(failed bool) error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.traceCleanup != nil {
		s.traceCleanup(failed)
	}
	return s.profiler.Stop()
}

// driverOptions maps [pipeline] and the run flags onto driver.Options.
func (s *runState) driverOptions() driver.Options {
	opts := driver.DefaultOptions()
	opts.StripTrivia = s.manifest.Pipeline.StripTrivia
	opts.TrailingEOF = s.manifest.Pipeline.TrailingEOF
	opts.KeepErrorText = s.manifest.Pipeline.KeepErrorText
	opts.MaxDiagnostics = s.maxDiagnostics
	opts.Jobs = s.jobs
	opts.Timer = s.timer
	return opts
}
