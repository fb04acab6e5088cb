package trace

import "errors"

// MultiTracer sends every event to several sinks, e.g. a stream and a ring.
type MultiTracer struct {
	sinks []Tracer
	level Level
}

func NewMultiTracer(level Level, sinks ...Tracer) *MultiTracer {
	return &MultiTracer{sinks: sinks, level: level}
}

// Emit hands each sink its own copy; sinks restamp Seq.
func (t *MultiTracer) Emit(ev *Event) {
	for _, sink := range t.sinks {
		cp := *ev
		sink.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	return t.each(Tracer.Flush)
}

func (t *MultiTracer) Close() error {
	return t.each(Tracer.Close)
}

func (t *MultiTracer) each(op func(Tracer) error) error {
	var errs []error
	for _, sink := range t.sinks {
		if err := op(sink); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }
