package trace

import (
	"io"
	"sync"
	"time"
)

// StreamTracer formats each event as it arrives. Text timestamps are
// offsets from the tracer's creation.
type StreamTracer struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	format Format
	origin time.Time
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{out: w, level: level, format: format, origin: time.Now()}
}

// Emit ignores write errors; a broken trace file must not fail a command.
func (t *StreamTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Kind, ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = NextSeq()
	_, _ = t.out.Write(FormatEvent(ev, t.format, t.origin)) //nolint:errcheck
}

type flusher interface{ Flush() error }

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes the output when it is an io.Closer.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	c, ok := t.out.(io.Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
