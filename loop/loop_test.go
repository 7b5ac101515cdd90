package loop

import "testing"

func newCounting(t *testing.T) (*Loop, *Queue, *int) {
	t.Helper()
	var (
		q Queue
		n int
	)
	l, err := New(&q, func() { n++ })
	if err != nil {
		t.Fatal(err)
	}
	return l, &q, &n
}

func TestNewRequiresSchedulerAndFrame(t *testing.T) {
	if _, err := New(nil, func() {}); err != ErrNoScheduler {
		t.Fatalf("expected ErrNoScheduler, got %v", err)
	}
	if _, err := New(&Queue{}, nil); err != ErrNoScheduler {
		t.Fatalf("expected ErrNoScheduler, got %v", err)
	}
}

func TestLoopRunsOneFramePerRefresh(t *testing.T) {
	l, q, n := newCounting(t)
	if l.State() != Stopped {
		t.Fatalf("new loop should be stopped, got %v", l.State())
	}

	l.Start()
	if *n != 0 {
		t.Fatal("start must not run a frame synchronously")
	}
	for i := 1; i <= 10; i++ {
		q.Fire()
		if *n != i {
			t.Fatalf("after %d refreshes expected %d frames, got %d", i, i, *n)
		}
		if q.Len() != 1 {
			t.Fatalf("expected exactly one pending iteration, got %d", q.Len())
		}
	}
	if l.Frames() != 10 {
		t.Fatalf("expected 10 frames counted, got %d", l.Frames())
	}
}

func TestLoopStartTwiceDoesNotDoubleSchedule(t *testing.T) {
	l, q, n := newCounting(t)
	l.Start()
	l.Start()
	q.Fire()

	if *n != 1 || q.Len() != 1 {
		t.Fatalf("expected one frame and one pending iteration, got %d and %d", *n, q.Len())
	}
}

func TestLoopPauseResume(t *testing.T) {
	l, q, n := newCounting(t)
	l.Start()
	q.Fire()

	l.Pause()
	if l.State() != Paused {
		t.Fatalf("expected paused, got %v", l.State())
	}
	q.Fire()
	q.Fire()
	if *n != 1 {
		t.Fatalf("paused loop ran frames: %d", *n)
	}
	if q.Len() != 0 {
		t.Fatal("paused loop must not reschedule itself")
	}

	l.Resume()
	q.Fire()
	if *n != 2 || l.State() != Running {
		t.Fatalf("expected the loop to resume, got %d frames in state %v", *n, l.State())
	}
}

func TestLoopPauseResumeBeforeRefresh(t *testing.T) {
	l, q, n := newCounting(t)
	l.Start()
	l.Pause()
	l.Resume()
	if q.Len() != 1 {
		t.Fatalf("expected a single pending iteration, got %d", q.Len())
	}
	q.Fire()
	if *n != 1 {
		t.Fatalf("expected 1 frame, got %d", *n)
	}
}

func TestLoopStop(t *testing.T) {
	l, q, n := newCounting(t)
	l.Start()
	q.Fire()
	l.Stop()
	q.Fire()
	q.Fire()

	if *n != 1 || l.State() != Stopped {
		t.Fatalf("stopped loop kept running: %d frames in state %v", *n, l.State())
	}

	l.Resume()
	if l.State() != Stopped {
		t.Fatal("resume must not restart a stopped loop")
	}
	l.Start()
	q.Fire()
	if *n != 2 {
		t.Fatalf("expected restart to run a frame, got %d", *n)
	}
}

func TestLoopStepIgnoresState(t *testing.T) {
	l, q, n := newCounting(t)
	l.Step()
	l.Step()
	if *n != 2 || q.Len() != 0 {
		t.Fatalf("step should run frames without scheduling, got %d frames, %d pending", *n, q.Len())
	}
}

func TestQueueDefersNestedSchedules(t *testing.T) {
	var (
		q     Queue
		order []int
	)
	q.Next(func() {
		order = append(order, 1)
		q.Next(func() { order = append(order, 3) })
	})
	q.Next(func() { order = append(order, 2) })

	q.Fire()
	if len(order) != 2 {
		t.Fatalf("nested callback ran in the same refresh: %v", order)
	}
	q.Fire()
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("expected nested callback on the next refresh, got %v", order)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Stopped: "stopped", Running: "running", Paused: "paused", State(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
