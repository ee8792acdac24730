// Package mazeapi exposes generated mazes and their shortest paths over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// unreachedLabel stands in for maze.Unreached on the wire.
const unreachedLabel = -1

// CreateMazeRequest asks for a new maze. Omitted fields take the server defaults.
type CreateMazeRequest struct {
	Rows           *int     `json:"rows" binding:"omitempty,min=1"`
	Cols           *int     `json:"cols" binding:"omitempty,min=1"`
	VerticalProb   *float64 `json:"vertical_prob" binding:"omitempty,gte=0,lte=1"`
	HorizontalProb *float64 `json:"horizontal_prob" binding:"omitempty,gte=0,lte=1"`
	Seed           *int64   `json:"seed"`
}

// CellDTO is a cell position on the wire.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse carries everything a renderer needs to draw a maze and its path.
type MazeResponse struct {
	ID              uuid.UUID `json:"id"`
	Rows            int       `json:"rows"`
	Cols            int       `json:"cols"`
	VerticalProb    float64   `json:"vertical_prob"`
	HorizontalProb  float64   `json:"horizontal_prob"`
	Seed            int64     `json:"seed"`
	Generation      int       `json:"generation"`
	VerticalWalls   [][]bool  `json:"vertical_walls"`
	HorizontalWalls [][]bool  `json:"horizontal_walls"`
	Entry           CellDTO   `json:"entry"`
	Goal            *CellDTO  `json:"goal"`
	Distance        *int      `json:"distance"`
	Labels          [][]int   `json:"labels"` // -1 marks unreached cells
	Path            []CellDTO `json:"path"`   // entry first
}

func toCellDTO(pos maze.CellPosition) CellDTO {
	return CellDTO{Row: pos.Row, Col: pos.Col}
}

func newMazeResponse(solved *i.SolvedMaze) MazeResponse {
	rec := solved.Record
	resp := MazeResponse{
		ID:              rec.ID,
		Rows:            rec.Rows,
		Cols:            rec.Cols,
		VerticalProb:    rec.VerticalProb,
		HorizontalProb:  rec.HorizontalProb,
		Seed:            rec.Seed,
		Generation:      rec.Generation,
		VerticalWalls:   solved.Maze.VerticalWalls,
		HorizontalWalls: solved.Maze.HorizontalWalls,
		Entry:           toCellDTO(solved.Result.Entry),
		Labels:          make([][]int, len(solved.Result.Labels)),
		Path:            make([]CellDTO, 0, len(solved.Path)),
	}

	if dist, ok := solved.Result.Distance(); ok {
		goal := toCellDTO(solved.Result.Goal)
		resp.Goal = &goal
		resp.Distance = &dist
	}

	for r, row := range solved.Result.Labels {
		resp.Labels[r] = make([]int, len(row))
		for c, label := range row {
			if label == maze.Unreached {
				label = unreachedLabel
			}
			resp.Labels[r][c] = label
		}
	}

	for _, cell := range maze.Forward(solved.Path) {
		resp.Path = append(resp.Path, toCellDTO(cell))
	}

	return resp
}
