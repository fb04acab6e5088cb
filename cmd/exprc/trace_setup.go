package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exprc/internal/trace"
)

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns a cleanup function; cleanup(failed=true) also dumps the ring
// buffer to stderr when one is configured.
func setupTracing(cmd *cobra.Command) (func(failed bool), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := root.PersistentFlags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("--trace-level: %w", err)
	}
	// --trace без уровня включает phase
	if level == trace.LevelOff && traceOutput != "" && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelPhase
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		setContext(cmd, trace.WithTracer(ctx, trace.Nop))
		return func(bool) {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx = trace.WithTracer(ctx, tracer)
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, cmd.CommandPath())
	setContext(cmd, ctx)

	stopHeartbeat := func() {}
	if heartbeatInterval > 0 {
		stopHeartbeat = trace.StartHeartbeat(ctx, tracer, heartbeatInterval)
	}

	errw := cmd.ErrOrStderr()
	cleanup := func(failed bool) {
		stopHeartbeat()
		detail := "ok"
		if failed {
			detail = "failed"
		}
		span.End(detail)

		if ring, ok := trace.Ring(tracer); ok && failed {
			fmt.Fprintln(errw, "trace: last events before failure:")
			if err := ring.Dump(errw, trace.FormatText); err != nil {
				fmt.Fprintf(errw, "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errw, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errw, "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

func setContext(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
}
