package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test that catalog entries are well formed
func TestCatalogConsistency(t *testing.T) {
	catalog := tetris.Catalog()
	require.Len(t, catalog, 7)

	colors := map[tetris.Color]tetris.Kind{}
	for i, tm := range catalog {
		t.Run(tm.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tetris.Kind(i), tm.Kind, "catalog is indexed by kind")

			require.Positive(t, tm.Shape.Height())
			for _, row := range tm.Shape {
				assert.Len(t, row, tm.Shape.Width(), "rows must be the same width")
			}

			filled := 0
			for range tm.Shape.Filled() {
				filled++
			}
			assert.Equal(t, 4, filled)

			other, dup := colors[tm.Color]
			assert.False(t, dup, "%s shares its color with %s", tm.Kind, other)
			colors[tm.Color] = tm.Kind
		})
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	a := tetris.Catalog()
	a[0].Shape[0][0] = false

	b := tetris.Catalog()
	assert.True(t, b[0].Shape[0][0])
}

func TestSpawnBounds(t *testing.T) {
	for _, cols := range []int{4, 5, 7, 10, 11, 16} {
		for _, tm := range tetris.Catalog() {
			p := tetris.NewPiece(tm.Kind, cols)

			assert.Zero(t, p.Y)
			assert.Equal(t, cols/2-tm.Shape.Width()/2, p.X)
			for pt := range p.Cells() {
				assert.GreaterOrEqual(t, pt.X, 0, "%s on %d columns", tm.Kind, cols)
				assert.Less(t, pt.X, cols, "%s on %d columns", tm.Kind, cols)
			}
		}
	}
}

func TestSpawnColumn(t *testing.T) {
	assert.Equal(t, 3, tetris.SpawnColumn(10, 4))
	assert.Equal(t, 4, tetris.SpawnColumn(10, 2))
	assert.Equal(t, 4, tetris.SpawnColumn(10, 3))
	assert.Equal(t, 4, tetris.SpawnColumn(11, 3))
}

func TestSpawnerIsDeterministicForASeed(t *testing.T) {
	a := tetris.NewSpawner(10, rand.New(rand.NewPCG(7, 11)))
	b := tetris.NewSpawner(10, rand.New(rand.NewPCG(7, 11)))

	seen := map[tetris.Kind]int{}
	for range 200 {
		pa, pb := a.Spawn(), b.Spawn()
		assert.Equal(t, pa.Kind, pb.Kind)
		assert.NotSame(t, pa, pb)
		seen[pa.Kind]++
	}
	assert.Len(t, seen, 7, "every kind should come up in 200 draws")
}

func TestSpawnerAllocatesFreshPieces(t *testing.T) {
	s := tetris.NewSpawner(10, rand.New(rand.NewPCG(1, 2)))

	first := s.Spawn()
	second := s.Spawn()
	require.NotSame(t, first, second)

	first.X = 99
	first.Shape[0][0] = !first.Shape[0][0]
	again := tetris.NewPiece(first.Kind, 10)
	assert.NotEqual(t, 99, again.X)
	assert.True(t, tetris.Catalog()[first.Kind].Shape.Equal(again.Shape), "mutating a piece must not leak into the catalog")
}

func TestPieceClone(t *testing.T) {
	p := tetris.NewPiece(tetris.KindT, 10)
	c := p.Clone()

	c.Shape = c.Shape.Rotate()
	c.X++

	assert.Equal(t, tetris.SpawnColumn(10, 3), p.X)
	assert.True(t, p.Shape.Equal(tetris.Catalog()[tetris.KindT].Shape))
}
