/*
Package maze provides tools for creating rectangular mazes and finding
shortest paths through them.

A Maze is a fixed lattice of cells whose internal walls are stored as two
boolean matrices: vertical walls between horizontally adjacent cells and
horizontal walls between vertically adjacent cells. The outer boundary is
always closed and is enforced by the neighbor query rather than stored.

Walls are placed with PopulateWalls, which runs an independent Bernoulli
trial per wall slot. Search runs a breadth-first search from a random cell on
the top row to the nearest cell on the bottom row, and ReconstructPath walks
the resulting distance labels back from the goal to the entry.

Nothing in this package is safe for concurrent mutation; a Maze is built once
and then only read.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange         = errors.New("cell out of range")
	ErrInvalidDimension   = errors.New("invalid maze dimensions")
	ErrInvalidProbability = errors.New("wall probability must be within [0, 1]")
	ErrInconsistentLabels = errors.New("distance labels do not lead back to the entry")
)

// Maze represents a rectangular grid of cells separated by optional walls.
type Maze struct {
	Rows            int      // Number of rows (n)
	Cols            int      // Number of columns (m)
	VerticalWalls   [][]bool // Rows x (Cols-1); true separates (r,c) from (r,c+1)
	HorizontalWalls [][]bool // (Rows-1) x Cols; true separates (r,c) from (r+1,c)
}

// New initializes a maze of the given dimensions with no internal walls.
func New(rows, cols int) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	vertical := make([][]bool, rows)
	for r := range vertical {
		vertical[r] = make([]bool, cols-1)
	}

	horizontal := make([][]bool, rows-1)
	for r := range horizontal {
		horizontal[r] = make([]bool, cols)
	}

	return &Maze{
		Rows:            rows,
		Cols:            cols,
		VerticalWalls:   vertical,
		HorizontalWalls: horizontal,
	}, nil
}

// InBound reports whether pos lies inside the grid.
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.Rows && pos.Col >= 0 && pos.Col < m.Cols
}

// HasVerticalWall reports whether a wall separates (row,col) from (row,col+1).
func (m *Maze) HasVerticalWall(row, col int) (bool, error) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols-1 {
		return false, fmt.Errorf("%w: vertical slot (%d,%d)", ErrOutOfRange, row, col)
	}
	return m.VerticalWalls[row][col], nil
}

// HasHorizontalWall reports whether a wall separates (row,col) from (row+1,col).
func (m *Maze) HasHorizontalWall(row, col int) (bool, error) {
	if row < 0 || row >= m.Rows-1 || col < 0 || col >= m.Cols {
		return false, fmt.Errorf("%w: horizontal slot (%d,%d)", ErrOutOfRange, row, col)
	}
	return m.HorizontalWalls[row][col], nil
}

// blocked reports whether leaving from in direction d hits a wall or the
// outer boundary. from must be in bounds.
func (m *Maze) blocked(from CellPosition, d Direction) bool {
	to := from.step(d)
	if !m.InBound(to) {
		return true
	}

	switch d.Delta {
	case CellPosition{Row: -1, Col: 0}:
		return m.HorizontalWalls[to.Row][to.Col]
	case CellPosition{Row: 1, Col: 0}:
		return m.HorizontalWalls[from.Row][from.Col]
	case CellPosition{Row: 0, Col: -1}:
		return m.VerticalWalls[to.Row][to.Col]
	case CellPosition{Row: 0, Col: 1}:
		return m.VerticalWalls[from.Row][from.Col]
	default:
		return true
	}
}

// Neighbors returns every cell reachable from pos in one step, in the order
// given by Directions.
func (m *Maze) Neighbors(pos CellPosition) ([]CellPosition, error) {
	if !m.InBound(pos) {
		return nil, fmt.Errorf("%w: %s in %dx%d maze", ErrOutOfRange, pos, m.Rows, m.Cols)
	}

	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		if !m.blocked(pos, d) {
			result = append(result, pos.step(d))
		}
	}
	return result, nil
}

// neighbors is Neighbors for positions already known to be in bounds.
func (m *Maze) neighbors(pos CellPosition) []CellPosition {
	result, _ := m.Neighbors(pos)
	return result
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.render(nil)
}

// RenderPath draws the maze with the entry marked S, the goal marked G and
// the remaining path cells marked *. path is ordered goal to entry, as
// returned by ReconstructPath; an empty path marks only the entry.
func (m *Maze) RenderPath(entry CellPosition, path []CellPosition) string {
	marks := make(map[CellPosition]byte, len(path)+1)
	for _, cell := range path {
		marks[cell] = '*'
	}
	if len(path) > 0 {
		marks[path[0]] = 'G'
	}
	marks[entry] = 'S'
	return m.render(marks)
}

func (m *Maze) render(marks map[CellPosition]byte) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Cols) + "\n")

	for row := 0; row < m.Rows; row++ {
		// Cell rows
		output.WriteByte('|')
		for col := 0; col < m.Cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			if mark, ok := marks[pos]; ok {
				output.WriteString(" " + string(mark) + " ")
			} else {
				output.WriteString("   ")
			}

			if col == m.Cols-1 || m.VerticalWalls[row][col] {
				output.WriteByte('|')
			} else {
				output.WriteByte(' ')
			}
		}
		output.WriteByte('\n')

		// Wall rows
		output.WriteByte('+')
		for col := 0; col < m.Cols; col++ {
			if row == m.Rows-1 || m.HorizontalWalls[row][col] {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteByte('\n')
	}

	return output.String()
}
