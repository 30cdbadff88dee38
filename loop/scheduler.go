package loop

import (
	"context"
	"math"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in registration order, one frame at a time, on
// the calling goroutine.
type Scheduler struct {
	resources   *Resources
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal

	frames  uint64
	lastNow time.Duration
}

// NewScheduler creates a scheduler whose systems share resources.
func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{
		resources: resources,
		commands:  newCommands(),
		systems:   make([]System, 0),
	}
}

// Resources returns the store shared by the registered systems.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register adds a system to the end of the frame and wires its Singleton
// fields. A Singleton field without an Init method panics.
func (s *Scheduler) Register(system System) {
	s.bindSingletons(system)
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(math.MaxInt64),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func (s *Scheduler) bindSingletons(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	resources := reflect.ValueOf(s.resources)
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}

		initFn := field.Addr().MethodByName("Init")
		if !initFn.IsValid() {
			panic("loop: Singleton field " + v.Type().Field(i).Name + " has no Init method")
		}
		initFn.Call([]reflect.Value{resources})
	}
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	st.minDuration = min(st.minDuration, d)
	st.maxDuration = max(st.maxDuration, d)
}

// Once executes all registered systems for the frame stamped now, then runs
// the commands they deferred. The first frame has a zero DeltaTime.
func (s *Scheduler) Once(now time.Duration) {
	var dt time.Duration
	if s.frames > 0 {
		dt = now - s.lastNow
	}
	frame := newUpdateFrame(s.frames, now, dt, s.commands, s.resources)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}

	s.commands.Flush()
	s.frames++
	s.lastNow = now
}

// Run executes a frame on every tick of interval, stamped with clock, until
// the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, clock Clock) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once(clock.Now())
		}
	}
}

// GetStats returns a copy of the per-system timing collected so far.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, st := range s.systemStats {
		out := SystemStats{
			Name:           st.name,
			ExecutionCount: st.executionCount,
			MaxDuration:    st.maxDuration,
			LastDuration:   st.lastDuration,
			TotalDuration:  st.totalDuration,
		}
		if st.executionCount > 0 {
			out.AvgDuration = st.totalDuration / time.Duration(st.executionCount)
			out.MinDuration = st.minDuration
		}
		stats.Systems[i] = out
	}

	return stats
}
