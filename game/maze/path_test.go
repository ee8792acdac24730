package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructPath(t *testing.T) {
	t.Run("No goal gives an empty path", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)
		for col := 0; col < 3; col++ {
			m.HorizontalWalls[0][col] = true
		}

		res, err := m.SearchFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)

		path, err := m.ReconstructPath(res)
		assert.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("Ties go to the first neighbor in direction order", func(t *testing.T) {
		m, err := New(3, 2)
		require.NoError(t, err)
		m.HorizontalWalls[1][0] = true

		res, err := m.SearchFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)
		require.True(t, res.HasGoal)
		assert.Equal(t, CellPosition{Row: 2, Col: 1}, res.Goal)

		// (1,1) can step north to (0,1) or west to (1,0); north comes first.
		path, err := m.ReconstructPath(res)
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{2, 1}, {1, 1}, {0, 1}, {0, 0}}, path)
		assert.Equal(t, []CellPosition{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Forward(path))
	})

	t.Run("Path is a chain of edges as long as the goal label", func(t *testing.T) {
		rng := rand.New(rand.NewSource(17))
		found := 0
		for i := 0; i < 50; i++ {
			m, err := Generate(20, 20, WallModel{VerticalProb: 0.4, HorizontalProb: 0.3}, rng)
			require.NoError(t, err)
			res := m.Search(rng)

			path, err := m.ReconstructPath(res)
			require.NoError(t, err)
			if !res.HasGoal {
				assert.Empty(t, path)
				continue
			}
			found++

			dist, _ := res.Distance()
			require.Len(t, path, dist+1)
			assert.Equal(t, res.Goal, path[0])
			assert.Equal(t, res.Entry, path[len(path)-1])
			for k := 0; k+1 < len(path); k++ {
				nbrs, err := m.Neighbors(path[k])
				require.NoError(t, err)
				assert.Contains(t, nbrs, path[k+1])
			}
		}
		assert.NotZero(t, found)
	})

	t.Run("Foreign labels are rejected", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)
		res, err := m.SearchFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)

		broken := res
		broken.Labels = newLabels(3, 3)
		broken.Labels[2][0] = 2
		_, err = m.ReconstructPath(broken)
		assert.ErrorIs(t, err, ErrInconsistentLabels)

		other, err := New(4, 4)
		require.NoError(t, err)
		_, err = other.ReconstructPath(res)
		assert.ErrorIs(t, err, ErrInconsistentLabels)

		outside := res
		outside.Goal = CellPosition{Row: 5, Col: 0}
		_, err = m.ReconstructPath(outside)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}
