package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/blockfall/canvas"
	"github.com/plus3/blockfall/game"
)

func main() {
	cfg := game.DefaultConfig()

	flag.Uint64Var(&cfg.Seed, "seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board rows.")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Board columns.")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels.")
	flag.BoolVar(&cfg.Debug, "debug", false, "Show the Dear ImGui debug overlay.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error).")
	flag.Parse()

	logger, err := game.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(2)
	}

	g, err := canvas.NewGame(cfg, canvas.DefaultBindings(), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start")
	}

	if err := canvas.Run(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
