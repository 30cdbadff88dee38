package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/rs/zerolog"
)

// App plays a game on a tcell screen. Key events are read on their own
// goroutine and handed to the frame loop through the engine's input queue.
type App struct {
	screen   tcell.Screen
	engine   *game.Engine
	bindings *Bindings
	fps      int
	log      zerolog.Logger
}

// NewApp builds an engine that presents to screen. The screen must already
// be initialized; the caller keeps ownership and calls Fini.
func NewApp(screen tcell.Screen, cfg game.Config, bindings *Bindings, logger zerolog.Logger, opts ...game.EngineOption) (*App, error) {
	if bindings == nil {
		bindings = DefaultBindings()
	}

	opts = append([]game.EngineOption{
		game.WithPresenter(NewRenderer(screen)),
		game.WithEngineLogger(logger),
	}, opts...)

	engine, err := game.NewEngine(cfg, loop.NewMonotonicClock(), opts...)
	if err != nil {
		return nil, fmt.Errorf("new terminal app: %w", err)
	}

	return &App{
		screen:   screen,
		engine:   engine,
		bindings: bindings,
		fps:      cfg.FPS,
		log:      logger.With().Str("component", "term").Logger(),
	}, nil
}

func (a *App) Engine() *game.Engine {
	return a.engine
}

// Run plays until the player quits, returning nil, or until parent is
// cancelled, returning its error.
func (a *App) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	go a.pollEvents(ctx)

	interval := time.Second / time.Duration(a.fps)
	a.log.Info().Dur("interval", interval).Msg("terminal loop started")
	a.engine.Run(ctx, interval)

	if a.engine.QuitRequested() {
		return nil
	}
	return parent.Err()
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			action, ok := a.bindings.Lookup(ev)
			if !ok {
				continue
			}
			if !a.engine.Push(action) {
				a.log.Warn().Stringer("action", action).Msg("input queue full")
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}
