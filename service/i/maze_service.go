package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	"github.com/google/uuid"
)

// MazeSpec describes a maze to generate. A zero Seed asks for a fresh one.
type MazeSpec struct {
	Rows           int
	Cols           int
	VerticalProb   float64
	HorizontalProb float64
	Seed           int64
}

// SolvedMaze is a generated maze together with its search outcome.
// Path is ordered goal first and empty when no goal was reachable.
type SolvedMaze struct {
	Record *dmn.MazeRecord
	Maze   *maze.Maze
	Result maze.SearchResult
	Path   []maze.CellPosition
}

// MazeService generates, solves and caches mazes.
type MazeService interface {
	Create(ctx context.Context, spec MazeSpec) (*SolvedMaze, error)
	Get(ctx context.Context, id uuid.UUID) (*SolvedMaze, error)
	Regenerate(ctx context.Context, id uuid.UUID) (*SolvedMaze, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
