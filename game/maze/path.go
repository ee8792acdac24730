package maze

import (
	"fmt"
	"slices"
)

// ReconstructPath walks the labels of res downhill from the goal to the entry
// and returns the visited cells ordered goal first. When several neighbors are
// one step closer, the first in Directions order is taken. A result without a
// goal yields an empty path.
func (m *Maze) ReconstructPath(res SearchResult) ([]CellPosition, error) {
	if !res.HasGoal {
		return nil, nil
	}
	if !m.InBound(res.Goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfRange, res.Goal)
	}
	if !res.Labels.fits(m) || !res.Labels.Reached(res.Goal) {
		return nil, ErrInconsistentLabels
	}

	current := res.Goal
	path := make([]CellPosition, 0, res.Labels.At(current)+1)
	path = append(path, current)

	for res.Labels.At(current) > 0 {
		next, ok := m.downhill(res.Labels, current)
		if !ok {
			return nil, fmt.Errorf("%w: stuck at %s", ErrInconsistentLabels, current)
		}
		path = append(path, next)
		current = next
	}

	if current != res.Entry {
		return nil, fmt.Errorf("%w: reached %s instead of entry %s", ErrInconsistentLabels, current, res.Entry)
	}
	return path, nil
}

// downhill returns the first neighbor of pos whose label is exactly one less.
func (m *Maze) downhill(labels Labels, pos CellPosition) (CellPosition, bool) {
	want := labels.At(pos) - 1
	for _, nbr := range m.neighbors(pos) {
		if labels.At(nbr) == want {
			return nbr, true
		}
	}
	return CellPosition{}, false
}

// Forward returns a copy of a goal-first path ordered entry first.
func Forward(path []CellPosition) []CellPosition {
	forward := slices.Clone(path)
	slices.Reverse(forward)
	return forward
}
