package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardLeft = 2
	boardTop  = 1
	cellWidth = 2
	panelGap  = 3
)

// Renderer draws snapshots onto a tcell screen. Each board cell is two
// columns wide so blocks look square in most terminal fonts.
type Renderer struct {
	screen tcell.Screen

	frame tcell.Style
	text  tcell.Style
	dim   tcell.Style
	alert tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		frame:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		dim:    tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		alert:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

func blockStyle(c tetris.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Present implements tetris.Presenter.
func (r *Renderer) Present(s tetris.Snapshot) {
	r.screen.Clear()

	r.drawFrame(s.Rows, s.Cols)
	r.drawBoard(s)
	r.drawPanel(s)

	switch s.State {
	case tetris.StatePaused:
		r.drawBanner(s, r.text, "PAUSED", "space to resume")
	case tetris.StateGameOver:
		r.drawBanner(s, r.alert, "GAME OVER", fmt.Sprintf("score %d", s.Score), "r to restart")
	}

	r.screen.Show()
}

func (r *Renderer) drawFrame(rows, cols int) {
	left := boardLeft - 1
	right := boardLeft + cols*cellWidth
	top := boardTop - 1
	bottom := boardTop + rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, r.frame)
		r.screen.SetContent(x, bottom, '─', nil, r.frame)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, r.frame)
		r.screen.SetContent(right, y, '│', nil, r.frame)
	}
	r.screen.SetContent(left, top, '┌', nil, r.frame)
	r.screen.SetContent(right, top, '┐', nil, r.frame)
	r.screen.SetContent(left, bottom, '└', nil, r.frame)
	r.screen.SetContent(right, bottom, '┘', nil, r.frame)
}

func (r *Renderer) drawBoard(s tetris.Snapshot) {
	for y, row := range s.Compose() {
		for x, c := range row {
			sx := boardLeft + x*cellWidth
			sy := boardTop + y

			switch c.Layer {
			case tetris.LayerLocked, tetris.LayerPiece:
				r.putCell(sx, sy, '█', blockStyle(c.Color))
			case tetris.LayerGhost:
				r.putCell(sx, sy, '░', blockStyle(c.Color))
			default:
				r.screen.SetContent(sx, sy, ' ', nil, r.dim)
				r.screen.SetContent(sx+1, sy, '.', nil, r.dim)
			}
		}
	}
}

func (r *Renderer) putCell(x, y int, ch rune, style tcell.Style) {
	for i := range cellWidth {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawPanel(s tetris.Snapshot) {
	x := boardLeft + s.Cols*cellWidth + panelGap
	y := boardTop

	r.drawText(x, y, r.text, fmt.Sprintf("Score  %d", s.Score))
	r.drawText(x, y+1, r.text, fmt.Sprintf("Level  %d", s.Level))
	r.drawText(x, y+2, r.text, fmt.Sprintf("Lines  %d", s.Lines))

	r.drawText(x, y+4, r.text, "Next")
	next := s.Next
	for pt := range next.Shape.Filled() {
		r.putCell(x+pt.X*cellWidth, y+5+pt.Y, '█', blockStyle(next.Color))
	}

	help := []string{
		"←→  move",
		"↑   rotate",
		"↓   drop",
		"spc pause",
		"r   reset",
		"q   quit",
	}
	for i, line := range help {
		r.drawText(x, y+10+i, r.dim, line)
	}
}

// drawBanner centers lines over the board.
func (r *Renderer) drawBanner(s tetris.Snapshot, style tcell.Style, lines ...string) {
	width := s.Cols * cellWidth
	top := boardTop + s.Rows/2 - len(lines)/2

	for i, line := range lines {
		n := len([]rune(line))
		x := boardLeft + max(0, (width-n)/2)
		r.drawText(x, top+i, style, line)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
