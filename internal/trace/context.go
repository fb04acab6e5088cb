package trace

import "context"

// ctxState is everything tracing keeps in a context: the sink and the span
// that new spans nest under.
type ctxState struct {
	tracer Tracer
	span   SpanContext
}

type stateKey struct{}

func stateOf(ctx context.Context) ctxState {
	if ctx != nil {
		if st, ok := ctx.Value(stateKey{}).(ctxState); ok && st.tracer != nil {
			return st
		}
	}
	return ctxState{tracer: Nop}
}

func withState(ctx context.Context, st ctxState) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// FromContext returns the tracer installed in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateOf(ctx).tracer
}

// WithTracer installs t in ctx. The enclosing span, if any, is preserved.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if t == nil {
		t = Nop
	}
	st := stateOf(ctx)
	st.tracer = t
	return withState(ctx, st)
}

// SpanContext names the span enclosing work that runs under a context.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// IsZero reports whether no span encloses the context.
func (sc SpanContext) IsZero() bool { return sc.SpanID == 0 }

// CurrentSpan returns the enclosing span, zero at the root.
func CurrentSpan(ctx context.Context) SpanContext {
	return stateOf(ctx).span
}

// WithSpanContext makes sc the enclosing span of ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	st := stateOf(ctx)
	st.span = sc
	return withState(ctx, st)
}
