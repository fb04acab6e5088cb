package trace

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq hands out the global event order.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID hands out span identifiers; zero is never returned.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// getGoroutineID reads the id from the first line of runtime.Stack,
// which looks like "goroutine 17 [running]:". Returns 0 when the header
// is not in that shape.
func getGoroutineID() uint64 {
	var buf [64]byte
	header := string(buf[:runtime.Stack(buf[:], false)])
	fields := strings.Fields(header)
	if len(fields) < 2 || fields[0] != "goroutine" {
		return 0
	}
	gid, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

// Span brackets one unit of front-end work, e.g. a file or a stage.
// The zero-cost span returned when tracing is off accepts every call.
type Span struct {
	tracer Tracer
	ctx    SpanContext
	parent uint64
	scope  Scope
	name   string
	start  time.Time
	extra  map[string]string
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled() && s.ctx.SpanID != 0
}

func (s *Span) event(kind Kind, at time.Time) *Event {
	return &Event{
		Time:     at,
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.ctx.SpanID,
		ParentID: s.parent,
		GID:      s.ctx.GID,
		Name:     s.name,
	}
}

// Begin opens a span named name under parent (0 for a root span) and
// emits SpanBegin. Filtered or disabled tracers get an inert span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(KindSpanBegin, scope) {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer: t,
		ctx:    SpanContext{SpanID: NextSpanID(), GID: getGoroutineID()},
		parent: parent,
		scope:  scope,
		name:   name,
		start:  time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.start))
	return s
}

// StartSpan opens a span with the tracer and parent found in ctx and
// returns a context in which the new span encloses further work.
func StartSpan(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	sp := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx).SpanID)
	if !sp.live() {
		return sp, ctx
	}
	return sp, WithSpanContext(ctx, sp.ctx)
}

// End emits SpanEnd with detail and reports how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	elapsed := time.Since(s.start)
	ev := s.event(KindSpanEnd, time.Now())
	ev.Detail = detail
	ev.Elapsed = elapsed
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return elapsed
}

// WithExtra attaches key=value to the SpanEnd event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = map[string]string{}
	}
	s.extra[key] = value
	return s
}

// ID is 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ctx.SpanID
}
