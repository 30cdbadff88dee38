package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := debugui.NewFrameHistory(4)
		assert.Zero(t, h.Len())
		assert.Zero(t, h.Average())
		assert.Zero(t, h.Max())
		assert.Len(t, h.Samples(), 4)
	})

	t.Run("partial", func(t *testing.T) {
		h := debugui.NewFrameHistory(4)
		h.Push(10 * time.Millisecond)
		h.Push(20 * time.Millisecond)

		assert.Equal(t, 2, h.Len())
		assert.InDelta(t, 15, h.Average(), 0.001)
		assert.InDelta(t, 20, h.Max(), 0.001)
	})

	t.Run("wraps", func(t *testing.T) {
		h := debugui.NewFrameHistory(3)
		for _, ms := range []int{50, 1, 2, 3} {
			h.Push(time.Duration(ms) * time.Millisecond)
		}

		assert.Equal(t, 3, h.Len())
		assert.InDelta(t, 2, h.Average(), 0.001)
		assert.InDelta(t, 3, h.Max(), 0.001)
	})

	t.Run("minimum size", func(t *testing.T) {
		h := debugui.NewFrameHistory(0)
		h.Push(time.Millisecond)
		assert.Len(t, h.Samples(), 1)
	})
}

type onlyO struct{ cols int }

func (s onlyO) Spawn() *tetris.Piece { return tetris.NewPiece(tetris.KindO, s.cols) }

func TestBoardLines(t *testing.T) {
	s, err := tetris.NewSession(
		tetris.WithDimensions(4, 4),
		tetris.WithPieceSource(onlyO{cols: 4}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".@@.",
		".@@.",
		".++.",
		".++.",
	}, debugui.BoardLines(s.Snapshot()))

	for !s.SoftDrop().Locked {
	}
	s.MoveLeft()

	assert.Equal(t, []string{
		"@@..",
		"@@..",
		".##.",
		".##.",
	}, debugui.BoardLines(s.Snapshot()))
}
