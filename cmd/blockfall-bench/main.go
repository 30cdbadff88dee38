package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/rs/zerolog"
)

func main() {
	cfg := game.DefaultConfig()

	duration := flag.Duration("duration", 10*time.Second, "How long to keep playing.")
	frameStep := flag.Duration("frame-step", 16*time.Millisecond, "Simulated time between frames.")
	actions := flag.Int("actions", 2, "Most random moves the bot queues per frame.")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for pieces and bot moves.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board rows.")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Board columns.")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level.")
	flag.Parse()

	logger, err := game.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-bench: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, *duration, *frameStep, *actions, logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("soak run failed")
	}
}

func run(cfg game.Config, duration, frameStep time.Duration, actions int, logger zerolog.Logger, out io.Writer) error {
	clock := loop.NewManualClock(0)
	engine, err := game.NewEngine(cfg, clock,
		game.WithEngineLogger(logger),
		game.WithSystemsBefore(NewBotSystem(cfg.Seed, actions)),
	)
	if err != nil {
		return err
	}

	report := &Report{
		Duration:  duration,
		Seed:      cfg.Seed,
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		FrameStep: frameStep,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", duration).Msg("soak run started")
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	start := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Advance(frameStep)

			frameStart := time.Now()
			engine.Step()
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		}
	}

	stats := engine.Stats()
	report.TotalTime = time.Since(start)
	report.SimulatedTime = clock.Now()
	report.Frames = stats.Frames
	report.Systems = stats.Systems
	report.Tally = engine.Play().Tally
	report.Dropped = engine.Input().Dropped()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().
		Uint64("frames", report.Frames).
		Int("games", report.Tally.Games).
		Msg("soak run finished")

	return report.Generate(out)
}
