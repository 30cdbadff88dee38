package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// State is the session's position in its lifecycle.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// PieceSource produces the pieces a session plays with. Every call must
// return a newly allocated piece.
type PieceSource interface {
	Spawn() *Piece
}

// StepResult describes what a gravity step did.
type StepResult struct {
	Moved      bool
	Locked     bool
	Cleared    []int // indices of the cleared rows before compaction, bottom first
	ScoreDelta int
	LevelUp    bool
	GameOver   bool
}

// Changed reports whether the step did anything at all.
func (r StepResult) Changed() bool {
	return r.Moved || r.Locked || r.GameOver
}

type sessionConfig struct {
	rows, cols int
	rng        *rand.Rand
	source     PieceSource
	logger     zerolog.Logger
	start      time.Duration
}

// Option configures a Session.
type Option func(*sessionConfig)

// WithDimensions overrides the default 20x10 board.
func WithDimensions(rows, cols int) Option {
	return func(c *sessionConfig) {
		c.rows = rows
		c.cols = cols
	}
}

// WithSeed makes piece selection deterministic.
func WithSeed(seed uint64) Option {
	return func(c *sessionConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithPieceSource replaces the uniform random spawner.
func WithPieceSource(src PieceSource) Option {
	return func(c *sessionConfig) {
		c.source = src
	}
}

// WithStartTime sets the drop timer's reference point for the first game.
func WithStartTime(now time.Duration) Option {
	return func(c *sessionConfig) {
		c.start = now
	}
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// Session owns the board and pieces of one game and applies the rules:
// gravity on a wall-clock timer, player moves, locking, line clears,
// scoring and game over.
//
// A Session is not safe for concurrent use; drive it from a single goroutine.
type Session struct {
	board   *Board
	source  PieceSource
	current *Piece
	next    *Piece

	score        int
	lines        int
	level        int
	dropInterval time.Duration
	lastDrop     time.Duration
	state        State
	locked       int

	log zerolog.Logger
}

// NewSession starts a running game with an empty board. The drop timer
// begins at time zero unless WithStartTime says otherwise.
func NewSession(opts ...Option) (*Session, error) {
	cfg := sessionConfig{
		rows:   DefaultRows,
		cols:   DefaultCols,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	board, err := NewBoard(cfg.rows, cfg.cols)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if cfg.source == nil && cfg.cols < widestTetromino() {
		return nil, fmt.Errorf("new session: %d columns cannot fit a %d-wide piece: %w",
			cfg.cols, widestTetromino(), ErrInvalidDimensions)
	}

	if cfg.source == nil {
		rng := cfg.rng
		if rng == nil {
			seed := uint64(time.Now().UnixNano())
			rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
		cfg.source = NewSpawner(cfg.cols, rng)
	}

	s := &Session{
		board:  board,
		source: cfg.source,
		log:    cfg.logger,
	}
	s.Reset(cfg.start)
	return s, nil
}

// Reset clears the board and starts a new game in the Running state. It is
// honored in every state, including GameOver. now becomes the drop timer's
// reference point.
func (s *Session) Reset(now time.Duration) {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.level = 1
	s.dropInterval = DropIntervalFor(1)
	s.lastDrop = now
	s.state = StateRunning
	s.locked = 0

	s.current = s.source.Spawn()
	s.next = s.source.Spawn()

	s.log.Info().
		Int("rows", s.board.Rows()).
		Int("cols", s.board.Cols()).
		Stringer("current", s.current.Kind).
		Stringer("next", s.next.Kind).
		Msg("session reset")
}

// Tick advances gravity. now is a monotonic timestamp; when more than the
// drop interval has passed since the last automatic drop, the current piece
// falls one row or locks. Paused and finished sessions ignore ticks.
func (s *Session) Tick(now time.Duration) StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}
	if now-s.lastDrop <= s.dropInterval {
		return StepResult{}
	}

	res := s.step()
	s.lastDrop = now
	return res
}

// MoveLeft shifts the current piece one column left if it fits.
func (s *Session) MoveLeft() bool {
	if s.state != StateRunning {
		return false
	}
	return Shift(s.board, s.current, -1, 0)
}

// MoveRight shifts the current piece one column right if it fits.
func (s *Session) MoveRight() bool {
	if s.state != StateRunning {
		return false
	}
	return Shift(s.board, s.current, 1, 0)
}

// SoftDrop performs one manual gravity step. The automatic drop timer is not
// touched.
func (s *Session) SoftDrop() StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}
	return s.step()
}

// Rotate turns the current piece clockwise with wall kicks.
func (s *Session) Rotate() bool {
	if s.state != StateRunning {
		return false
	}
	return Rotate(s.board, s.current)
}

// TogglePause flips between Running and Paused. It reports false, and does
// nothing, once the game is over.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	default:
		return false
	}
	s.log.Debug().Stringer("state", s.state).Msg("pause toggled")
	return true
}

func (s *Session) step() StepResult {
	if Shift(s.board, s.current, 0, 1) {
		return StepResult{Moved: true}
	}
	return s.lockCurrent()
}

func (s *Session) lockCurrent() StepResult {
	if !s.board.Lock(s.current) {
		s.state = StateGameOver
		s.log.Info().
			Int("score", s.score).
			Int("lines", s.lines).
			Int("level", s.level).
			Msg("game over")
		return StepResult{GameOver: true}
	}
	s.locked++

	res := StepResult{Locked: true, Cleared: s.board.FullRows()}
	if n := s.board.ClearFullRows(); n > 0 {
		res.ScoreDelta = ClearScore(n, s.level)
		s.score += res.ScoreDelta
		s.lines += n

		if level := LevelFor(s.lines); level > s.level {
			s.level = level
			s.dropInterval = DropIntervalFor(level)
			res.LevelUp = true
			s.log.Info().
				Int("level", s.level).
				Dur("drop_interval", s.dropInterval).
				Msg("level up")
		}

		s.log.Debug().
			Int("rows", n).
			Int("score_delta", res.ScoreDelta).
			Int("score", s.score).
			Msg("rows cleared")
	}

	if !s.promote() {
		s.state = StateGameOver
		res.GameOver = true
		s.log.Info().
			Stringer("piece", s.current.Kind).
			Int("score", s.score).
			Msg("game over: piece does not fit between the walls")
	}
	return res
}

// promote makes the preview piece current and spawns a new preview. A piece
// that does not fit at its spawn row is lifted until it does, and the next
// lock of that piece ends the game. Lifting cannot free a piece that overlaps
// a side wall; promote reports false once the piece is entirely above the
// board.
func (s *Session) promote() bool {
	s.current = s.next
	s.next = s.source.Spawn()

	for Collides(s.board, s.current, 0, 0, nil) {
		if s.current.Y < -s.current.Shape.Height() {
			return false
		}
		s.current.Y--
	}
	return true
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

func (s *Session) Score() int                  { return s.score }
func (s *Session) Lines() int                  { return s.lines }
func (s *Session) Level() int                  { return s.level }
func (s *Session) DropInterval() time.Duration { return s.dropInterval }

// PiecesLocked counts the pieces merged into the board since the last reset.
func (s *Session) PiecesLocked() int { return s.locked }

// Ghost returns the row the current piece would come to rest on if dropped
// straight down.
func (s *Session) Ghost() int {
	return DropRow(s.board, s.current)
}

// Snapshot copies everything a presenter needs to draw a frame.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Rows:         s.board.Rows(),
		Cols:         s.board.Cols(),
		Board:        s.board.Cells(),
		Current:      *s.current.Clone(),
		Next:         *s.next.Clone(),
		GhostY:       s.Ghost(),
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.level,
		DropInterval: s.dropInterval,
		State:        s.state,
	}
}
