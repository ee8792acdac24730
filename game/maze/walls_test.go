package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countWalls(walls [][]bool) int {
	n := 0
	for _, row := range walls {
		for _, w := range row {
			if w {
				n++
			}
		}
	}
	return n
}

func TestPopulateWalls(t *testing.T) {
	t.Run("Zero probability leaves every slot open", func(t *testing.T) {
		m, err := Generate(6, 7, WallModel{}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Zero(t, countWalls(m.VerticalWalls))
		assert.Zero(t, countWalls(m.HorizontalWalls))
	})

	t.Run("Probability one closes every slot", func(t *testing.T) {
		m, err := Generate(6, 7, WallModel{VerticalProb: 1, HorizontalProb: 1}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 6*6, countWalls(m.VerticalWalls))
		assert.Equal(t, 5*7, countWalls(m.HorizontalWalls))
	})

	t.Run("Probabilities are drawn independently per orientation", func(t *testing.T) {
		m, err := Generate(60, 60, WallModel{VerticalProb: 1, HorizontalProb: 0}, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, 60*59, countWalls(m.VerticalWalls))
		assert.Zero(t, countWalls(m.HorizontalWalls))
	})

	t.Run("Wall density follows the probability", func(t *testing.T) {
		m, err := Generate(100, 100, WallModel{VerticalProb: DefaultVerticalProb, HorizontalProb: DefaultHorizontalProb}, rand.New(rand.NewSource(11)))
		require.NoError(t, err)
		assert.InDelta(t, DefaultVerticalProb, float64(countWalls(m.VerticalWalls))/(100*99), 0.03)
		assert.InDelta(t, DefaultHorizontalProb, float64(countWalls(m.HorizontalWalls))/(99*100), 0.03)
	})

	t.Run("Rejects probabilities outside the unit interval", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(1))

		for _, w := range []WallModel{
			{VerticalProb: -0.1},
			{VerticalProb: 1.1},
			{HorizontalProb: -1},
			{HorizontalProb: 2},
		} {
			assert.ErrorIs(t, PopulateWalls(w, m, rng), ErrInvalidProbability)
		}

		_, err = Generate(3, 3, WallModel{VerticalProb: 3}, rng)
		assert.ErrorIs(t, err, ErrInvalidProbability)
	})

	t.Run("Same seed gives the same walls", func(t *testing.T) {
		w := WallModel{VerticalProb: 0.4, HorizontalProb: 0.3}
		a, err := Generate(15, 20, w, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := Generate(15, 20, w, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
