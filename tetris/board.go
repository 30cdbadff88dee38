package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 20
	DefaultCols = 10
)

// ErrInvalidDimensions is returned when a board would have no cells.
var ErrInvalidDimensions = errors.New("tetris: board dimensions must be positive")

// Board is the playfield: rows x cols cells, row 0 at the top.
// Its dimensions are fixed at creation.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new board %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	b := &Board{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the cell at (x, y). Out-of-bounds positions read as empty.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Empty()
	}
	return b.cells[y][x]
}

// Set overwrites the cell at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// IsOccupied reports whether (x, y) is on the board and holds a block.
// Rows above the top are never occupied.
func (b *Board) IsOccupied(x, y int) bool {
	return b.inBounds(x, y) && !b.cells[y][x].IsEmpty()
}

// Lock paints every filled cell of p into the board. If any of those cells
// lies above row 0, or outside the side walls or the floor, the piece cannot
// be placed: Lock returns false and the board is left exactly as it was.
func (b *Board) Lock(p *Piece) bool {
	for pt := range p.Cells() {
		if pt.Y < 0 || !b.inBounds(pt.X, pt.Y) {
			return false
		}
	}

	for pt := range p.Cells() {
		b.Set(pt.X, pt.Y, Occupied(p.Color))
	}
	return true
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows lists the indices of rows that are completely occupied, bottom
// first.
func (b *Board) FullRows() []int {
	var full []int
	for y := b.rows - 1; y >= 0; y-- {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row, shifting the rows above down and
// inserting empty rows at the top. Rows are processed bottom to top; after a
// removal the same index is checked again because a new row has slid into it.
// It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}

		removed := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(removed)
		b.cells[0] = removed

		cleared++
		y++
	}
	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{rows: b.rows, cols: b.cols, cells: make([][]Cell, b.rows)}
	for y := range b.cells {
		out.cells[y] = make([]Cell, b.cols)
		copy(out.cells[y], b.cells[y])
	}
	return out
}

// Cells returns a copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]Cell {
	return b.Clone().cells
}
