package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	sweeps atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.sweeps.Add(1)
	return 1
}

func (c *countingSweeper) Len() int { return 0 }

func TestRunOnce(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, time.Minute, nil)

	s.RunOnce()
	if sw.sweeps.Load() != 1 {
		t.Fatalf("expected 1 sweep, got %d", sw.sweeps.Load())
	}
}

func TestStartRunsPeriodically(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, 50*time.Millisecond, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if sw.sweeps.Load() >= 2 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected periodic sweeps, got %d", sw.sweeps.Load())
}
