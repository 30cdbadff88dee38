package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/term"
	"github.com/rs/zerolog"
)

func main() {
	cfg := game.DefaultConfig()

	logFile := flag.String("log-file", "", "Write logs to this file; logs are discarded when empty.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error).")
	flag.Parse()

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, logPath string) error {
	logger := zerolog.Nop()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		logger, err = game.NewLogger(f, cfg.LogLevel)
		if err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	app, err := term.NewApp(screen, cfg, term.DefaultBindings(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	session := app.Engine().Session()
	logger.Info().
		Int("score", session.Score()).
		Int("lines", session.Lines()).
		Int("level", session.Level()).
		Msg("bye")
	return nil
}
