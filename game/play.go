package game

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Tally aggregates results across every game played in a process.
type Tally struct {
	Games        int
	PiecesLocked int
	Lines        int
	Tetrises     int
	BestScore    int
	BestLevel    int
	Actions      int
}

// Play is the resource the systems share: the session being played plus the
// bookkeeping that outlives a single game.
type Play struct {
	Session *tetris.Session

	// Last is the most recent step that changed the session, and LastAt the
	// frame time it happened.
	Last   tetris.StepResult
	LastAt time.Duration

	// QuitRequested is set when the player asks to leave. Adapters poll it.
	QuitRequested bool

	Tally Tally
}

func (p *Play) observe(res tetris.StepResult, now time.Duration) {
	if !res.Changed() {
		return
	}
	p.Last = res
	p.LastAt = now

	if res.Locked {
		p.Tally.PiecesLocked++
	}
	if n := len(res.Cleared); n > 0 {
		p.Tally.Lines += n
		if n == 4 {
			p.Tally.Tetrises++
		}
	}
	p.Tally.BestScore = max(p.Tally.BestScore, p.Session.Score())
	p.Tally.BestLevel = max(p.Tally.BestLevel, p.Session.Level())
	if res.GameOver {
		p.Tally.Games++
	}
}
