package pipeline

import (
	"sync"
	"time"
)

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink drops events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

// RecordingSink keeps every event in arrival order.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *RecordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	s.events = append(s.events, evt)
	s.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (s *RecordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// Emit sends evt to sink, which may be nil.
func Emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

// EmitQueued announces every file before work starts.
func EmitQueued(sink ProgressSink, files []string) {
	for _, f := range files {
		Emit(sink, Event{File: f, Stage: StageLoad, Status: StatusQueued})
	}
}

// StageRun reports one stage of one file: Working on creation, then Done or
// Error on Finish.
type StageRun struct {
	sink  ProgressSink
	file  string
	stage Stage
	start time.Time
}

// Start emits StatusWorking for file at stage.
func Start(sink ProgressSink, file string, stage Stage) *StageRun {
	Emit(sink, Event{File: file, Stage: stage, Status: StatusWorking})
	return &StageRun{sink: sink, file: file, stage: stage, start: time.Now()}
}

// Finish emits StatusDone, or StatusError when err is non-nil, and returns
// the elapsed time.
func (r *StageRun) Finish(err error) time.Duration {
	elapsed := time.Since(r.start)
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	Emit(r.sink, Event{File: r.file, Stage: r.stage, Status: status, Err: err, Elapsed: elapsed})
	return elapsed
}
