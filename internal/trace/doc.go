// Package trace is the diagnostic event log of exprc.
//
// Every pipeline stage opens a span; spans are written by a Tracer selected
// from the command line:
//
//	exprc ir --trace=- --trace-level=detail examples/
//
// Tracers:
//
//   - Nop: tracing disabled, zero cost
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events, dumped when a command fails
//   - MultiTracer: fan-out to several tracers
//
// Levels filter by scope. LevelPhase shows driver and stage spans
// (tokenize, parse, lower), LevelDetail adds per-file spans and
// LevelDebug shows everything.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
