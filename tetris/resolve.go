package tetris

// WallKicks are the horizontal offsets tried, in order, when a rotation does
// not fit in place. This is a simplified kick search, not the SRS tables: no
// vertical kicks and no per-shape offsets.
var WallKicks = []int{-1, 1, -2, 2}

// Collides reports whether p, shifted by (dx, dy) and optionally drawn with
// override instead of its own shape, would leave the side walls, reach past
// the floor, or overlap a locked cell. Cells above row 0 only test against the
// side walls.
func Collides(b *Board, p *Piece, dx, dy int, override Shape) bool {
	shape := p.Shape
	if override != nil {
		shape = override
	}

	for local := range shape.Filled() {
		x := p.X + local.X + dx
		y := p.Y + local.Y + dy

		if x < 0 || x >= b.Cols() || y >= b.Rows() {
			return true
		}

		if y >= 0 && b.IsOccupied(x, y) {
			return true
		}
	}

	return false
}

// Rotate turns p clockwise, trying the rotated shape in place and then each
// offset in WallKicks. The first fit is committed and Rotate returns true.
// If nothing fits, p is left unchanged and Rotate returns false.
func Rotate(b *Board, p *Piece) bool {
	rotated := p.Shape.Rotate()

	if !Collides(b, p, 0, 0, rotated) {
		p.Shape = rotated
		return true
	}

	for _, dx := range WallKicks {
		if !Collides(b, p, dx, 0, rotated) {
			p.X += dx
			p.Shape = rotated
			return true
		}
	}

	return false
}

// Shift moves p by (dx, dy) if the destination is free.
func Shift(b *Board, p *Piece, dx, dy int) bool {
	if Collides(b, p, dx, dy, nil) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// DropRow returns the lowest row p could reach by falling straight down from
// its current position.
func DropRow(b *Board, p *Piece) int {
	dy := 0
	for !Collides(b, p, 0, dy+1, nil) {
		dy++
	}
	return p.Y + dy
}
