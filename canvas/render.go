package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const panelCells = 6

var (
	background = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	gridLine   = color.RGBA{R: 36, G: 36, B: 44, A: 255}
	border     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	shade      = color.NRGBA{A: 160}
	outline    = color.Black
)

// Renderer keeps the latest snapshot and draws it onto an ebiten image.
// Present and Draw are both called on ebiten's game goroutine.
type Renderer struct {
	cell int

	snap    tetris.Snapshot
	hasSnap bool
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cell: cellSize}
}

// Present implements tetris.Presenter.
func (r *Renderer) Present(s tetris.Snapshot) {
	r.snap = s
	r.hasSnap = true
}

// SizeFor returns the pixel size of a rows by cols board plus its side panel.
func (r *Renderer) SizeFor(rows, cols int) (int, int) {
	return (cols+panelCells+2)*r.cell + r.cell/2, (rows + 2) * r.cell
}

func blockColor(c tetris.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func ghostColor(c tetris.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 70}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if !r.hasSnap {
		return
	}

	s := r.snap
	ox, oy := float32(r.cell), float32(r.cell)
	size := float32(r.cell)

	r.drawGrid(screen, s, ox, oy)

	for y, row := range s.Compose() {
		for x, c := range row {
			px := ox + float32(x)*size
			py := oy + float32(y)*size

			switch c.Layer {
			case tetris.LayerLocked, tetris.LayerPiece:
				vector.DrawFilledRect(screen, px, py, size, size, blockColor(c.Color), false)
				vector.StrokeRect(screen, px, py, size, size, 1, outline, false)
			case tetris.LayerGhost:
				vector.DrawFilledRect(screen, px, py, size, size, ghostColor(c.Color), false)
			}
		}
	}

	w := float32(s.Cols) * size
	h := float32(s.Rows) * size
	vector.StrokeRect(screen, ox-2, oy-2, w+4, h+4, 2, border, false)

	r.drawPanel(screen, s, int(ox+w)+r.cell, int(oy))

	switch s.State {
	case tetris.StatePaused:
		r.drawOverlay(screen, s, ox, oy, "PAUSED", "space to resume")
	case tetris.StateGameOver:
		r.drawOverlay(screen, s, ox, oy, "GAME OVER", fmt.Sprintf("score %d", s.Score), "press R to restart")
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, s tetris.Snapshot, ox, oy float32) {
	size := float32(r.cell)
	w := float32(s.Cols) * size
	h := float32(s.Rows) * size

	for x := 1; x < s.Cols; x++ {
		vector.StrokeLine(screen, ox+float32(x)*size, oy, ox+float32(x)*size, oy+h, 1, gridLine, false)
	}
	for y := 1; y < s.Rows; y++ {
		vector.StrokeLine(screen, ox, oy+float32(y)*size, ox+w, oy+float32(y)*size, 1, gridLine, false)
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s tetris.Snapshot, x, y int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", s.Score), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL\n%d", s.Level), x, y+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", s.Lines), x, y+80)
	ebitenutil.DebugPrintAt(screen, "NEXT", x, y+120)

	size := float32(r.cell)
	for pt := range s.Next.Shape.Filled() {
		px := float32(x) + float32(pt.X)*size
		py := float32(y+140) + float32(pt.Y)*size
		vector.DrawFilledRect(screen, px, py, size, size, blockColor(s.Next.Color), false)
		vector.StrokeRect(screen, px, py, size, size, 1, outline, false)
	}
}

// drawOverlay dims the board and prints lines near its middle.
func (r *Renderer) drawOverlay(screen *ebiten.Image, s tetris.Snapshot, ox, oy float32, lines ...string) {
	w := float32(s.Cols * r.cell)
	h := float32(s.Rows * r.cell)
	vector.DrawFilledRect(screen, ox, oy, w, h, shade, false)

	// DebugPrint glyphs are 6x16.
	top := int(oy+h/2) - len(lines)*8
	for i, line := range lines {
		x := int(ox+w/2) - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, top+i*16)
	}
}
