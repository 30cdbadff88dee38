package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// SessionInspector shows the live session: scalars, pieces, the board as
// text, lifetime tallies, and buttons that queue pause and reset.
type SessionInspector struct {
	engine *game.Engine
}

func NewSessionInspector(engine *game.Engine) *SessionInspector {
	return &SessionInspector{engine: engine}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	play := si.engine.Play()
	snap := play.Session.Snapshot()

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", snap.Score, snap.Lines, snap.Level))
	imgui.Text(fmt.Sprintf("Drop interval: %s", snap.DropInterval))
	imgui.Text(fmt.Sprintf("Current: %s at (%d, %d), lands on row %d", snap.Current.Kind, snap.Current.X, snap.Current.Y, snap.GhostY))
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Kind))

	if imgui.Button("Pause / Resume") {
		si.engine.Push(game.ActionTogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		si.engine.Push(game.ActionReset)
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Last step") {
		last := play.Last
		imgui.Text(fmt.Sprintf("- at %s", play.LastAt))
		imgui.Text(fmt.Sprintf("- moved %t locked %t game over %t", last.Moved, last.Locked, last.GameOver))
		imgui.Text(fmt.Sprintf("- cleared rows %v for %d points", last.Cleared, last.ScoreDelta))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Tally") {
		t := play.Tally
		imgui.Text(fmt.Sprintf("- Games finished: %d", t.Games))
		imgui.Text(fmt.Sprintf("- Pieces locked: %d", t.PiecesLocked))
		imgui.Text(fmt.Sprintf("- Lines: %d (%d tetrises)", t.Lines, t.Tetrises))
		imgui.Text(fmt.Sprintf("- Best score: %d  Best level: %d", t.BestScore, t.BestLevel))
		imgui.Text(fmt.Sprintf("- Actions: %d  Dropped: %d", t.Actions, si.engine.Input().Dropped()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		for _, line := range BoardLines(snap) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// BoardLines renders a composed snapshot as text: '#' locked, '@' falling,
// '+' ghost, '.' empty.
func BoardLines(s tetris.Snapshot) []string {
	grid := s.Compose()
	lines := make([]string, len(grid))

	var sb strings.Builder
	for y, row := range grid {
		sb.Reset()
		for _, c := range row {
			switch c.Layer {
			case tetris.LayerLocked:
				sb.WriteByte('#')
			case tetris.LayerPiece:
				sb.WriteByte('@')
			case tetris.LayerGhost:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}
