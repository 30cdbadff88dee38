package tetris

import "fmt"

// Color is an RGB paint value for a block. It carries no occupancy meaning on
// its own; a black block is still a block.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cell is a single board square: either empty or occupied with a color.
// The zero Cell is empty.
type Cell struct {
	color    Color
	occupied bool
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell filled with the given color.
func Occupied(c Color) Cell {
	return Cell{color: c, occupied: true}
}

// IsEmpty reports whether nothing has been locked into the cell.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Color returns the cell's paint and whether the cell is occupied.
func (c Cell) Color() (Color, bool) {
	return c.color, c.occupied
}

func (c Cell) String() string {
	if !c.occupied {
		return "empty"
	}
	return c.color.Hex()
}
