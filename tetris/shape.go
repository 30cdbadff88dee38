package tetris

import "iter"

// Point is a column/row pair. Y grows downward.
type Point struct {
	X, Y int
}

// Shape is a row-major binary matrix; true marks a filled cell relative to the
// piece's top-left origin. Shapes are treated as immutable: Rotate returns a
// new matrix and never touches the receiver.
type Shape [][]bool

// ParseShape builds a Shape from rows of '#' (filled) and '.' (empty).
func ParseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, ch := range row {
			shape[y][x] = ch == '#'
		}
	}
	return shape
}

// Height is the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width is the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise:
// rotated[col][rows-1-row] = shape[row][col].
func (s Shape) Rotate() Shape {
	rows := s.Height()
	cols := s.Width()

	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for row := range rows {
		for col := range cols {
			rotated[col][rows-1-row] = s[row][col]
		}
	}

	return rotated
}

// Filled yields the local coordinates of every filled cell in row-major order.
func (s Shape) Filled() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y, row := range s {
			for x, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the matrix.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Equal reports whether both matrices have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}
