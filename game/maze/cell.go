package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String returns the cell as "(row,col)".
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// Direction is one of the four steps a cell can take to reach a neighbor.
type Direction struct {
	Name  string
	Delta CellPosition
}

// Directions lists the steps in the order neighbors are enumerated:
// up, left, down, right. Path reconstruction relies on this order for
// its tie-break.
var Directions = []Direction{
	{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
	{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
	{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
	{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
}

// step returns the cell reached from cp by moving along d.
func (cp CellPosition) step(d Direction) CellPosition {
	return CellPosition{Row: cp.Row + d.Delta.Row, Col: cp.Col + d.Delta.Col}
}
