package tetris

import (
	"iter"
	"math/rand/v2"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Tetromino is a catalog entry binding a kind to its spawn shape and color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color Color
}

var catalog = []Tetromino{
	{Kind: KindI, Color: Color{0x00, 0xf0, 0xf0}, Shape: ParseShape(
		"####",
	)},
	{Kind: KindJ, Color: Color{0x00, 0x00, 0xf0}, Shape: ParseShape(
		"#..",
		"###",
	)},
	{Kind: KindL, Color: Color{0xf0, 0xa0, 0x00}, Shape: ParseShape(
		"..#",
		"###",
	)},
	{Kind: KindO, Color: Color{0xf0, 0xf0, 0x00}, Shape: ParseShape(
		"##",
		"##",
	)},
	{Kind: KindS, Color: Color{0x00, 0xf0, 0x00}, Shape: ParseShape(
		".##",
		"##.",
	)},
	{Kind: KindT, Color: Color{0xa0, 0x00, 0xf0}, Shape: ParseShape(
		".#.",
		"###",
	)},
	{Kind: KindZ, Color: Color{0xf0, 0x00, 0x00}, Shape: ParseShape(
		"##.",
		".##",
	)},
}

// Catalog returns a copy of the seven tetromino definitions in I, J, L, O, S,
// T, Z order.
func Catalog() []Tetromino {
	out := make([]Tetromino, len(catalog))
	for i, t := range catalog {
		out[i] = Tetromino{Kind: t.Kind, Shape: t.Shape.Clone(), Color: t.Color}
	}
	return out
}

// Piece is the falling tetromino. X and Y locate the shape's top-left corner
// on the board and may be negative while the piece is above the visible rows.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X, Y  int
}

// NewPiece builds a piece of the given kind centered horizontally on a board
// with cols columns, at row 0.
func NewPiece(kind Kind, cols int) *Piece {
	t := catalog[kind]
	return &Piece{
		Kind:  t.Kind,
		Shape: t.Shape.Clone(),
		Color: t.Color,
		X:     SpawnColumn(cols, t.Shape.Width()),
		Y:     0,
	}
}

func widestTetromino() int {
	widest := 0
	for _, t := range catalog {
		widest = max(widest, t.Shape.Width(), t.Shape.Height())
	}
	return widest
}

// SpawnColumn is floor(cols/2) - floor(width/2).
func SpawnColumn(cols, width int) int {
	return cols/2 - width/2
}

// Cells yields the absolute board coordinates of the piece's filled cells.
func (p *Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for local := range p.Shape.Filled() {
			if !yield(Point{X: p.X + local.X, Y: p.Y + local.Y}) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Spawner samples new pieces from the catalog uniformly at random.
// Repeats are allowed; there is no bag.
type Spawner struct {
	cols int
	rng  *rand.Rand
}

// NewSpawner creates a spawner for a board with cols columns.
func NewSpawner(cols int, rng *rand.Rand) *Spawner {
	return &Spawner{cols: cols, rng: rng}
}

// Spawn returns a freshly allocated piece at its spawn position.
func (s *Spawner) Spawn() *Piece {
	return NewPiece(Kind(s.rng.IntN(len(catalog))), s.cols)
}
