package game

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// Engine wires a session into a frame scheduler: queued input first, then
// gravity, then presentation.
type Engine struct {
	scheduler *loop.Scheduler
	clock     loop.Clock
	play      *Play
	input     *InputQueue
	quit      *quitWatch
	log       zerolog.Logger
}

// quitWatch cancels a running loop once the player has asked to quit.
type quitWatch struct {
	play   *Play
	cancel context.CancelFunc
}

func (w *quitWatch) Execute(*loop.UpdateFrame) {
	if w.cancel != nil && w.play.QuitRequested {
		w.cancel()
	}
}

type engineConfig struct {
	presenter   tetris.Presenter
	logger      zerolog.Logger
	before      []loop.System
	after       []loop.System
	sessionOpts []tetris.Option
	inputBuffer int
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

// WithPresenter sets the adapter that draws each frame.
func WithPresenter(p tetris.Presenter) EngineOption {
	return func(c *engineConfig) { c.presenter = p }
}

func WithEngineLogger(logger zerolog.Logger) EngineOption {
	return func(c *engineConfig) { c.logger = logger }
}

// WithSystemsBefore registers systems that run ahead of input handling, such
// as bots that feed the input queue.
func WithSystemsBefore(systems ...loop.System) EngineOption {
	return func(c *engineConfig) { c.before = append(c.before, systems...) }
}

// WithSystemsAfter registers systems that run after presentation, such as
// debug overlays.
func WithSystemsAfter(systems ...loop.System) EngineOption {
	return func(c *engineConfig) { c.after = append(c.after, systems...) }
}

// WithSessionOptions adds session options on top of those derived from the
// config. Later options win.
func WithSessionOptions(opts ...tetris.Option) EngineOption {
	return func(c *engineConfig) { c.sessionOpts = append(c.sessionOpts, opts...) }
}

func WithInputBuffer(size int) EngineOption {
	return func(c *engineConfig) { c.inputBuffer = size }
}

// NewEngine validates cfg, starts a session at clock.Now() and registers the
// frame systems.
func NewEngine(cfg Config, clock loop.Clock, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ec := engineConfig{logger: zerolog.Nop(), inputBuffer: DefaultInputBuffer}
	for _, opt := range opts {
		opt(&ec)
	}

	sessionLog := ec.logger.With().Str("component", "session").Logger()
	sessionOpts := append(cfg.SessionOptions(sessionLog), tetris.WithStartTime(clock.Now()))
	session, err := tetris.NewSession(append(sessionOpts, ec.sessionOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	resources := loop.NewResources()
	input := loop.AddResource(resources, NewInputQueue(ec.inputBuffer))
	play := loop.AddResource(resources, Play{Session: session})

	scheduler := loop.NewScheduler(resources)
	for _, sys := range ec.before {
		scheduler.Register(sys)
	}
	scheduler.Register(&InputSystem{Log: ec.logger.With().Str("component", "input").Logger()})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&PresentSystem{Presenter: ec.presenter})
	for _, sys := range ec.after {
		scheduler.Register(sys)
	}
	quit := &quitWatch{play: play}
	scheduler.Register(quit)

	ec.logger.Info().
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Uint64("seed", cfg.Seed).
		Int("systems", scheduler.GetStats().SystemCount).
		Msg("engine ready")

	return &Engine{
		scheduler: scheduler,
		clock:     clock,
		play:      play,
		input:     input,
		quit:      quit,
		log:       ec.logger,
	}, nil
}

// Step runs one frame stamped with the clock's current reading.
func (e *Engine) Step() {
	e.scheduler.Once(e.clock.Now())
}

// Run steps the engine every interval until ctx is cancelled or the player
// quits.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.quit.cancel = cancel
	defer func() { e.quit.cancel = nil }()

	e.scheduler.Run(ctx, interval, e.clock)
	e.log.Info().
		Uint64("frames", e.scheduler.GetStats().Frames).
		Bool("quit", e.play.QuitRequested).
		Msg("engine stopped")
}

// Push queues an action for the next frame.
func (e *Engine) Push(a Action) bool {
	return e.input.Push(a)
}

func (e *Engine) Play() *Play                 { return e.play }
func (e *Engine) Session() *tetris.Session    { return e.play.Session }
func (e *Engine) Scheduler() *loop.Scheduler  { return e.scheduler }
func (e *Engine) Input() *InputQueue          { return e.input }
func (e *Engine) Clock() loop.Clock           { return e.clock }
func (e *Engine) QuitRequested() bool         { return e.play.QuitRequested }
func (e *Engine) Stats() *loop.SchedulerStats { return e.scheduler.GetStats() }
