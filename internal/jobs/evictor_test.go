package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingEvicter struct {
	calls atomic.Int32
	err   error
}

func (c *countingEvicter) Evict(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestEvictor_RunsImmediatelyAndOnTicks(t *testing.T) {
	ev := &countingEvicter{}
	e := NewEvictor(ev, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for ev.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("evictor ran %d times, want at least 3", ev.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("evictor did not stop after cancel")
	}
}

func TestEvictor_ErrorsDoNotStopLoop(t *testing.T) {
	ev := &countingEvicter{err: errors.New("db down")}
	e := NewEvictor(ev, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	e.Start(ctx)

	if ev.calls.Load() < 2 {
		t.Errorf("evictor ran %d times, want at least 2 despite errors", ev.calls.Load())
	}
}
