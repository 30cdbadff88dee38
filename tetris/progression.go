package tetris

import "time"

const (
	LinesPerLevel    = 10
	PointsPerLine    = 100
	BaseDropInterval = 1000 * time.Millisecond
	DropIntervalStep = 100 * time.Millisecond
	MinDropInterval  = 100 * time.Millisecond
)

// LevelFor returns floor(lines/10) + 1.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// DropIntervalFor returns max(100ms, 1000ms - (level-1)*100ms).
func DropIntervalFor(level int) time.Duration {
	interval := BaseDropInterval - time.Duration(level-1)*DropIntervalStep
	return max(interval, MinDropInterval)
}

// ClearScore is the score awarded for clearing rows at once at the given
// level: rows * 100 * level.
func ClearScore(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	return rows * PointsPerLine * level
}
