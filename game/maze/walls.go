package maze

import (
	"fmt"
	"math/rand"
)

// Wall probabilities used when none are supplied.
const (
	DefaultVerticalProb   = 0.4
	DefaultHorizontalProb = 0.3
)

// WallModel defines the wall configuration for a maze.
// VerticalProb is the chance that a given vertical slot holds a wall and
// HorizontalProb the same for horizontal slots. Each slot is drawn
// independently, so nothing guarantees the result is solvable.
type WallModel struct {
	VerticalProb   float64 // Probability of a wall between (r,c) and (r,c+1)
	HorizontalProb float64 // Probability of a wall between (r,c) and (r+1,c)
}

// Validate checks both probabilities lie within [0, 1].
func (w WallModel) Validate() error {
	if w.VerticalProb < 0 || w.VerticalProb > 1 {
		return fmt.Errorf("%w: vertical %v", ErrInvalidProbability, w.VerticalProb)
	}
	if w.HorizontalProb < 0 || w.HorizontalProb > 1 {
		return fmt.Errorf("%w: horizontal %v", ErrInvalidProbability, w.HorizontalProb)
	}
	return nil
}

// PopulateWalls overwrites every internal wall slot of m with a fresh
// Bernoulli draw from rng. Calling it again regenerates the maze; labels from
// an earlier search are stale afterwards.
func PopulateWalls(w WallModel, m *Maze, rng *rand.Rand) error {
	if err := w.Validate(); err != nil {
		return err
	}

	for row := range m.VerticalWalls {
		for col := range m.VerticalWalls[row] {
			m.VerticalWalls[row][col] = rng.Float64() < w.VerticalProb
		}
	}

	for row := range m.HorizontalWalls {
		for col := range m.HorizontalWalls[row] {
			m.HorizontalWalls[row][col] = rng.Float64() < w.HorizontalProb
		}
	}

	return nil
}

// Generate builds a rows x cols maze and populates its walls from rng.
func Generate(rows, cols int, w WallModel, rng *rand.Rand) (*Maze, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	if err := PopulateWalls(w, m, rng); err != nil {
		return nil, err
	}
	return m, nil
}
