package trace

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// StartHeartbeat emits a heartbeat every interval until ctx is done or the
// returned stop function is called. A long gap between span ends while
// heartbeats keep coming means a stage is stuck rather than the process.
func StartHeartbeat(ctx context.Context, t Tracer, interval time.Duration) (stop func()) {
	if t == nil || !t.Enabled() || interval <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var n uint64
		for {
			select {
			case <-ticker.C:
				n++
				t.Emit(&Event{
					Time:   time.Now(),
					Seq:    NextSeq(),
					Kind:   KindHeartbeat,
					Scope:  ScopeDriver,
					GID:    getGoroutineID(),
					Name:   "heartbeat",
					Detail: "#" + strconv.FormatUint(n, 10),
				})
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
