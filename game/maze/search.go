package maze

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Unreached is the label of a cell the search never reached.
const Unreached = math.MaxInt

// Labels holds the distance from the entry cell to every cell, indexed
// [row][col]. Cells the search never reached hold Unreached.
type Labels [][]int

func newLabels(rows, cols int) Labels {
	labels := make(Labels, rows)
	for r := range labels {
		labels[r] = make([]int, cols)
		for c := range labels[r] {
			labels[r][c] = Unreached
		}
	}
	return labels
}

// At returns the label of pos. pos must be in bounds.
func (l Labels) At(pos CellPosition) int {
	return l[pos.Row][pos.Col]
}

// Reached reports whether the search assigned pos a finite distance.
func (l Labels) Reached(pos CellPosition) bool {
	return l.At(pos) != Unreached
}

// fits reports whether l has the shape of m.
func (l Labels) fits(m *Maze) bool {
	if len(l) != m.Rows {
		return false
	}
	for _, row := range l {
		if len(row) != m.Cols {
			return false
		}
	}
	return true
}

// SearchResult is the outcome of a single search. Goal is only meaningful
// when HasGoal is true; an unreachable bottom row is not an error.
type SearchResult struct {
	Entry   CellPosition
	Goal    CellPosition
	HasGoal bool
	Labels  Labels
}

// Distance returns the number of steps from Entry to Goal.
func (r SearchResult) Distance() (int, bool) {
	if !r.HasGoal {
		return 0, false
	}
	return r.Labels.At(r.Goal), true
}

// Search picks a uniformly random entry cell on the top row and runs
// SearchFrom it.
func (m *Maze) Search(rng *rand.Rand) SearchResult {
	entry := CellPosition{Row: 0, Col: rng.Intn(m.Cols)}
	// entry is in range by construction.
	result, _ := m.SearchFrom(entry)
	return result
}

// SearchFrom runs a breadth-first search from entry, which must be a cell on
// the top row, and returns the labels together with the closest bottom-row
// cell if any is reachable.
//
// Once a bottom-row cell is known, cells whose label is not strictly below
// the best distance found are still drained from the frontier but no longer
// expanded.
func (m *Maze) SearchFrom(entry CellPosition) (SearchResult, error) {
	if !m.InBound(entry) || entry.Row != 0 {
		return SearchResult{}, fmt.Errorf("%w: entry %s must be on the top row of a %dx%d maze", ErrOutOfRange, entry, m.Rows, m.Cols)
	}

	labels := newLabels(m.Rows, m.Cols)
	labels[entry.Row][entry.Col] = 0

	result := SearchResult{Entry: entry, Labels: labels}
	best := Unreached
	lastRow := m.Rows - 1

	// A cell is queued at most once; its first discovery already carries its
	// shortest distance, so skipping duplicates does not change the labels.
	frontier := queue.New[CellPosition]()
	frontier.Enqueue(entry)
	discovered := mapset.New[CellPosition]()
	discovered.Put(entry)

	for !frontier.Empty() {
		current := frontier.Peek()
		dist := labels[current.Row][current.Col]

		if current.Row == lastRow && dist < best {
			result.Goal = current
			result.HasGoal = true
			best = dist
		}

		if !result.HasGoal || dist < best {
			for _, nbr := range m.neighbors(current) {
				labels[nbr.Row][nbr.Col] = min(labels[nbr.Row][nbr.Col], dist+1)
				if !discovered.Has(nbr) {
					discovered.Put(nbr)
					frontier.Enqueue(nbr)
				}
			}
		}

		frontier.Dequeue()
	}

	return result, nil
}
