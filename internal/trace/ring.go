package trace

import (
	"io"
	"sync"
	"time"
)

const defaultRingSize = 4096

// RingTracer remembers only the newest events. The CLI dumps it when a
// command fails so the tail of the run can be inspected.
type RingTracer struct {
	mu      sync.RWMutex
	slots   []Event
	written uint64 // total events ever stored
	level   Level
}

// NewRingTracer keeps up to size events; size <= 0 picks a default.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{slots: make([]Event, size), level: level}
}

// Emit stores a copy of ev, overwriting the oldest slot once the ring is full.
// Heartbeats bypass the level filter.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Kind, ev.Scope) {
		return
	}
	cp := *ev
	cp.Seq = NextSeq()

	t.mu.Lock()
	t.slots[t.written%uint64(len(t.slots))] = cp
	t.written++
	t.mu.Unlock()
}

// Snapshot returns the stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	size := uint64(len(t.slots))
	if t.written <= size {
		return append([]Event(nil), t.slots[:t.written]...)
	}
	cut := t.written % size
	out := make([]Event, 0, size)
	out = append(out, t.slots[cut:]...)
	return append(out, t.slots[:cut]...)
}

// Dump writes the snapshot to w. In text form times are shown relative to
// the oldest retained event.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	events := t.Snapshot()
	var origin time.Time
	if len(events) > 0 {
		origin = events[0].Time
	}
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format, origin)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
