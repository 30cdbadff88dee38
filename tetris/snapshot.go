package tetris

import "time"

// Layer tells a presenter what occupies a square in a composed frame.
type Layer int

const (
	LayerEmpty Layer = iota
	LayerLocked
	LayerGhost
	LayerPiece
)

// Snapshot is a read-only copy of a session taken between ticks. Nothing in
// it aliases session state.
type Snapshot struct {
	Rows, Cols   int
	Board        [][]Cell
	Current      Piece
	Next         Piece
	GhostY       int
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
	State        State
}

// Presenter draws snapshots. Every presentation adapter implements it.
type Presenter interface {
	Present(Snapshot)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(Snapshot)

func (f PresenterFunc) Present(s Snapshot) { f(s) }

// Ghost returns the current piece moved down to its landing row.
func (s Snapshot) Ghost() Piece {
	g := s.Current
	g.Y = s.GhostY
	return g
}

// Compose flattens the board, ghost and falling piece into a single grid.
// The piece wins over the ghost, the ghost over locked cells; piece cells
// above row 0 are dropped.
func (s Snapshot) Compose() [][]ComposedCell {
	out := make([][]ComposedCell, s.Rows)
	for y := range out {
		out[y] = make([]ComposedCell, s.Cols)
		for x := range out[y] {
			c := s.Board[y][x]
			if color, ok := c.Color(); ok {
				out[y][x] = ComposedCell{Layer: LayerLocked, Color: color}
			}
		}
	}

	paint := func(p Piece, layer Layer) {
		for pt := range p.Cells() {
			if pt.Y < 0 || pt.Y >= s.Rows || pt.X < 0 || pt.X >= s.Cols {
				continue
			}
			if layer == LayerGhost && out[pt.Y][pt.X].Layer != LayerEmpty {
				continue
			}
			out[pt.Y][pt.X] = ComposedCell{Layer: layer, Color: p.Color}
		}
	}

	if s.State != StateGameOver {
		paint(s.Ghost(), LayerGhost)
		paint(s.Current, LayerPiece)
	}
	return out
}

// ComposedCell is one square of a composed frame.
type ComposedCell struct {
	Layer Layer
	Color Color
}

// NewBoardFromSnapshot rebuilds a board from the snapshot's cells.
func NewBoardFromSnapshot(s Snapshot) *Board {
	b := &Board{rows: s.Rows, cols: s.Cols, cells: make([][]Cell, s.Rows)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, s.Cols)
		copy(b.cells[y], s.Board[y])
	}
	return b
}
