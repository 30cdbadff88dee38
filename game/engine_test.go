package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyKind struct {
	kind tetris.Kind
	cols int
}

func (s onlyKind) Spawn() *tetris.Piece { return tetris.NewPiece(s.kind, s.cols) }

type recorder struct {
	frames []tetris.Snapshot
}

func (r *recorder) Present(s tetris.Snapshot) { r.frames = append(r.frames, s) }

func (r *recorder) last(t *testing.T) tetris.Snapshot {
	t.Helper()
	require.NotEmpty(t, r.frames)
	return r.frames[len(r.frames)-1]
}

func newEngine(t *testing.T, cfg game.Config, kind tetris.Kind, opts ...game.EngineOption) (*game.Engine, *loop.ManualClock, *recorder) {
	t.Helper()
	clock := loop.NewManualClock(0)
	rec := &recorder{}
	opts = append([]game.EngineOption{
		game.WithPresenter(rec),
		game.WithSessionOptions(tetris.WithPieceSource(onlyKind{kind: kind, cols: cfg.Cols})),
	}, opts...)

	e, err := game.NewEngine(cfg, clock, opts...)
	require.NoError(t, err)
	return e, clock, rec
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Rows = 1

	_, err := game.NewEngine(cfg, loop.NewManualClock(0))
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestEnginePresentsEveryFrame(t *testing.T) {
	e, clock, rec := newEngine(t, game.DefaultConfig(), tetris.KindO)

	for range 3 {
		e.Step()
		clock.Advance(16 * time.Millisecond)
	}

	assert.Len(t, rec.frames, 3)
	assert.Equal(t, tetris.StateRunning, rec.last(t).State)
}

func TestEngineAppliesInputBeforeGravity(t *testing.T) {
	e, clock, rec := newEngine(t, game.DefaultConfig(), tetris.KindO)
	e.Step()
	start := rec.last(t).Current

	e.Push(game.ActionMoveLeft)
	e.Push(game.ActionMoveLeft)
	e.Push(game.ActionSoftDrop)
	clock.Set(time.Second + time.Millisecond)
	e.Step()

	snap := rec.last(t)
	assert.Equal(t, start.X-2, snap.Current.X)
	assert.Equal(t, 2, snap.Current.Y, "one row from the soft drop, one from gravity")
	assert.Zero(t, e.Input().Pending())
	assert.Equal(t, 3, e.Play().Tally.Actions)
}

func TestEngineGravityFollowsClock(t *testing.T) {
	e, clock, rec := newEngine(t, game.DefaultConfig(), tetris.KindI)

	e.Step()
	clock.Set(time.Second)
	e.Step()
	assert.Zero(t, rec.last(t).Current.Y)

	clock.Set(time.Second + time.Millisecond)
	e.Step()
	assert.Equal(t, 1, rec.last(t).Current.Y)
	assert.True(t, e.Play().Last.Moved)
	assert.Equal(t, time.Second+time.Millisecond, e.Play().LastAt)
}

func TestEngineStartsTimerAtClock(t *testing.T) {
	clock := loop.NewManualClock(time.Hour)
	rec := &recorder{}
	e, err := game.NewEngine(game.DefaultConfig(), clock, game.WithPresenter(rec))
	require.NoError(t, err)

	e.Step()
	clock.Advance(500 * time.Millisecond)
	e.Step()
	assert.Zero(t, rec.last(t).Current.Y, "the first drop is a full interval after start")
}

func TestEnginePause(t *testing.T) {
	e, clock, rec := newEngine(t, game.DefaultConfig(), tetris.KindT)

	e.Push(game.ActionTogglePause)
	e.Step()
	require.Equal(t, tetris.StatePaused, rec.last(t).State)

	e.Push(game.ActionMoveLeft)
	e.Push(game.ActionRotate)
	clock.Set(10 * time.Second)
	e.Step()

	paused := rec.last(t)
	assert.Zero(t, paused.Current.Y)
	assert.Equal(t, tetris.SpawnColumn(10, 3), paused.Current.X)

	e.Push(game.ActionTogglePause)
	e.Step()
	assert.Equal(t, tetris.StateRunning, rec.last(t).State)
}

func TestEngineTallyAcrossGames(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Rows, cfg.Cols = 4, 4
	e, _, rec := newEngine(t, cfg, tetris.KindO)

	for range 10 {
		e.Push(game.ActionSoftDrop)
		e.Step()
		if rec.last(t).State == tetris.StateGameOver {
			break
		}
	}
	require.Equal(t, tetris.StateGameOver, rec.last(t).State)

	tally := e.Play().Tally
	assert.Equal(t, 1, tally.Games)
	assert.Equal(t, 2, tally.PiecesLocked)
	assert.True(t, e.Play().Last.GameOver)

	e.Push(game.ActionReset)
	e.Step()
	assert.Equal(t, tetris.StateRunning, rec.last(t).State)
	assert.Equal(t, 1, e.Play().Tally.Games, "a reset is not a finished game")
}

func TestEngineQuit(t *testing.T) {
	e, _, _ := newEngine(t, game.DefaultConfig(), tetris.KindO)

	e.Push(game.ActionQuit)
	e.Step()

	assert.True(t, e.QuitRequested())
	assert.Equal(t, tetris.StateRunning, e.Session().State())
}

func TestEngineRunStopsOnQuit(t *testing.T) {
	e, err := game.NewEngine(game.DefaultConfig(), loop.NewMonotonicClock())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	e.Push(game.ActionQuit)
	done := make(chan struct{})
	go func() {
		e.Run(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(4 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	assert.NoError(t, ctx.Err(), "Run returned because of the quit, not the timeout")
	assert.Positive(t, e.Stats().Frames)
}

func TestEngineExtraSystems(t *testing.T) {
	var order []string
	before := loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "before") })
	after := loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "after") })

	e, _, _ := newEngine(t, game.DefaultConfig(), tetris.KindO,
		game.WithSystemsBefore(before),
		game.WithSystemsAfter(after),
	)
	e.Step()

	assert.Equal(t, []string{"before", "after"}, order)

	stats := e.Stats()
	names := make([]string, len(stats.Systems))
	for i, s := range stats.Systems {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"SystemFunc", "InputSystem", "GravitySystem", "PresentSystem", "SystemFunc", "quitWatch"}, names)
}
