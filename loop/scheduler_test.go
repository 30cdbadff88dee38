package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
)

type Counter struct {
	Value int
}

type IncrementSystem struct {
	Counter      loop.Singleton[Counter]
	ExecuteCount int
	LastDelta    time.Duration
}

func (s *IncrementSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
	s.Counter.Get().Value++
}

type RecordSystem struct {
	Counter loop.Singleton[Counter]
	Seen    []int
	Flushed []int
}

func (s *RecordSystem) Execute(frame *loop.UpdateFrame) {
	v := s.Counter.Get().Value
	s.Seen = append(s.Seen, v)
	frame.Commands.Defer(func() {
		s.Flushed = append(s.Flushed, s.Counter.Get().Value*10)
	})
}

type unexportedField struct {
	counter loop.Singleton[Counter]
}

func (s *unexportedField) Execute(*loop.UpdateFrame) {}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and singleton initialization", func(t *testing.T) {
		resources := loop.NewResources()
		loop.AddResource(resources, Counter{})
		scheduler := loop.NewScheduler(resources)

		inc := &IncrementSystem{}
		rec := &RecordSystem{}
		scheduler.Register(inc)
		scheduler.Register(rec)

		if !inc.Counter.Exists() {
			t.Fatal("expected Counter singleton to be wired on registration")
		}

		scheduler.Once(0)
		scheduler.Once(time.Second)

		if inc.ExecuteCount != 2 {
			t.Errorf("expected IncrementSystem to execute twice, got %d", inc.ExecuteCount)
		}
		if len(rec.Seen) != 2 || rec.Seen[0] != 1 || rec.Seen[1] != 2 {
			t.Errorf("expected RecordSystem to see [1 2], got %v", rec.Seen)
		}
		if got := loop.GetResource[Counter](resources).Value; got != 2 {
			t.Errorf("expected counter 2, got %d", got)
		}
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		resources := loop.NewResources()
		loop.AddResource(resources, Counter{})
		scheduler := loop.NewScheduler(resources)

		rec := &RecordSystem{}
		inc := &IncrementSystem{}
		scheduler.Register(rec)
		scheduler.Register(inc)

		scheduler.Once(0)

		if len(rec.Seen) != 1 || rec.Seen[0] != 0 {
			t.Errorf("expected RecordSystem to see [0], got %v", rec.Seen)
		}
		if len(rec.Flushed) != 1 || rec.Flushed[0] != 10 {
			t.Errorf("expected deferred command to see the incremented counter, got %v", rec.Flushed)
		}
	})

	t.Run("delta time", func(t *testing.T) {
		scheduler := loop.NewScheduler(loop.NewResources())
		inc := &IncrementSystem{}
		loop.AddResource(scheduler.Resources(), Counter{})
		scheduler.Register(inc)

		scheduler.Once(5 * time.Second)
		if inc.LastDelta != 0 {
			t.Errorf("expected first frame delta 0, got %v", inc.LastDelta)
		}

		scheduler.Once(5*time.Second + 16*time.Millisecond)
		if inc.LastDelta != 16*time.Millisecond {
			t.Errorf("expected delta 16ms, got %v", inc.LastDelta)
		}
	})

	t.Run("frame index", func(t *testing.T) {
		scheduler := loop.NewScheduler(loop.NewResources())

		var indices []uint64
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			indices = append(indices, frame.Index)
		}))

		for i := range 3 {
			scheduler.Once(time.Duration(i) * time.Millisecond)
		}

		if len(indices) != 3 || indices[0] != 0 || indices[2] != 2 {
			t.Errorf("expected frame indices [0 1 2], got %v", indices)
		}
	})

	t.Run("unexported singleton fields are left alone", func(t *testing.T) {
		resources := loop.NewResources()
		loop.AddResource(resources, Counter{})
		scheduler := loop.NewScheduler(resources)

		sys := &unexportedField{}
		scheduler.Register(sys)

		if sys.counter.Exists() {
			t.Error("expected unexported field to stay unbound")
		}
	})

	t.Run("run until cancelled", func(t *testing.T) {
		resources := loop.NewResources()
		loop.AddResource(resources, Counter{})
		scheduler := loop.NewScheduler(resources)

		inc := &IncrementSystem{}
		scheduler.Register(inc)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		scheduler.Run(ctx, 10*time.Millisecond, loop.NewMonotonicClock())

		if inc.ExecuteCount < 3 {
			t.Errorf("expected at least 3 executions in 100ms, got %d", inc.ExecuteCount)
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	resources := loop.NewResources()
	loop.AddResource(resources, Counter{})
	scheduler := loop.NewScheduler(resources)

	scheduler.Register(&IncrementSystem{})
	scheduler.Register(&RecordSystem{})

	stats := scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any frame, got %v", stats.Systems[0].MinDuration)
	}

	for i := range 5 {
		scheduler.Once(time.Duration(i) * time.Millisecond)
	}

	stats = scheduler.GetStats()
	if stats.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", stats.Frames)
	}
	if stats.Systems[0].Name != "IncrementSystem" || stats.Systems[1].Name != "RecordSystem" {
		t.Errorf("unexpected system names %q, %q", stats.Systems[0].Name, stats.Systems[1].Name)
	}

	for _, sys := range stats.Systems {
		if sys.ExecutionCount != 5 {
			t.Errorf("%s: expected 5 executions, got %d", sys.Name, sys.ExecutionCount)
		}
		if sys.MinDuration > sys.MaxDuration {
			t.Errorf("%s: min %v exceeds max %v", sys.Name, sys.MinDuration, sys.MaxDuration)
		}
		if sys.AvgDuration != sys.TotalDuration/5 {
			t.Errorf("%s: avg %v is not total/5 (%v)", sys.Name, sys.AvgDuration, sys.TotalDuration)
		}
	}
}
