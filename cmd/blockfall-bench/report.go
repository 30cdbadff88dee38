package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	Rows      int
	Cols      int
	FrameStep time.Duration

	// Results
	Frames        uint64
	TotalTime     time.Duration
	SimulatedTime time.Duration
	Tally         game.Tally
	Dropped       int
	FrameTime     Stats
	Systems       []loop.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Board:** {{.Rows}}x{{.Cols}}
- **Simulated Frame Step:** {{.FrameStep}}

## Play
- **Games Finished:** {{.Tally.Games}}
- **Pieces Locked:** {{.Tally.PiecesLocked}}
- **Lines Cleared:** {{.Tally.Lines}} ({{.Tally.Tetrises}} tetrises)
- **Best Score:** {{.Tally.BestScore}} (level {{.Tally.BestLevel}})
- **Actions Applied:** {{.Tally.Actions}} ({{.Dropped}} dropped)

## Frames
- **Frames:** {{.Frames}}
- **Wall Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
