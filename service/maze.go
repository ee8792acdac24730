package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
)

// Options tunes a MazeService. Zero fields fall back to defaults.
type Options struct {
	MaxDimension int              // Largest accepted row or column count
	Seeder       func() int64     // Source of seeds for mazes created without one
	Now          func() time.Time // Clock used for record timestamps
}

// MazeService generates mazes, solves them and keeps their recipes in a store.
type MazeService struct {
	store  i.MazeStore
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService on top of store.
func NewMazeService(store i.MazeStore, logger i.Logger, opts *Options) (*MazeService, error) {
	if store == nil || logger == nil {
		return nil, fmt.Errorf("maze service: store and logger are required")
	}

	resolved := Options{}
	if opts != nil {
		resolved = *opts
	}
	if resolved.MaxDimension <= 0 {
		resolved.MaxDimension = defaultMaxDimension
	}
	if resolved.Seeder == nil {
		resolved.Seeder = func() int64 { return time.Now().UnixNano() }
	}
	if resolved.Now == nil {
		resolved.Now = time.Now
	}

	return &MazeService{
		store:  store,
		logger: logger,
		opts:   &resolved,
	}, nil
}

// Solve rebuilds the maze described by rec and runs search and path
// reconstruction on it. The same record always yields the same maze.
func Solve(rec *dmn.MazeRecord) (*i.SolvedMaze, error) {
	rng := rand.New(rand.NewSource(rec.Seed))

	walls := maze.WallModel{VerticalProb: rec.VerticalProb, HorizontalProb: rec.HorizontalProb}
	m, err := maze.Generate(rec.Rows, rec.Cols, walls, rng)
	if err != nil {
		return nil, err
	}

	result := m.Search(rng)
	path, err := m.ReconstructPath(result)
	if err != nil {
		return nil, err
	}

	return &i.SolvedMaze{
		Record: rec,
		Maze:   m,
		Result: result,
		Path:   path,
	}, nil
}

// Create generates and solves a new maze and stores its recipe.
func (s *MazeService) Create(ctx context.Context, spec i.MazeSpec) (*i.SolvedMaze, error) {
	if spec.Rows > s.opts.MaxDimension || spec.Cols > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", maze.ErrInvalidDimension, spec.Rows, spec.Cols, s.opts.MaxDimension)
	}

	seed := spec.Seed
	if seed == 0 {
		seed = s.opts.Seeder()
	}

	now := s.opts.Now().UTC()
	rec := &dmn.MazeRecord{
		ID:             uuid.New(),
		Rows:           spec.Rows,
		Cols:           spec.Cols,
		VerticalProb:   spec.VerticalProb,
		HorizontalProb: spec.HorizontalProb,
		Seed:           seed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	solved, err := Solve(rec)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, rec); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", rec.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Created maze %s (%dx%d, seed %d, goal found: %t)", rec.ID, rec.Rows, rec.Cols, rec.Seed, solved.Result.HasGoal))
	return solved, nil
}

// Get rebuilds a stored maze.
func (s *MazeService) Get(ctx context.Context, id uuid.UUID) (*i.SolvedMaze, error) {
	rec, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return Solve(rec)
}

// Regenerate redraws the walls of a stored maze with a new seed, keeping its
// dimensions and probabilities, and solves it again.
func (s *MazeService) Regenerate(ctx context.Context, id uuid.UUID) (*i.SolvedMaze, error) {
	unlock, err := s.store.Lock(ctx, id)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Locking maze %s: %v", id, err))
		return nil, err
	}
	defer unlock()

	rec, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seed := s.opts.Seeder()
	if seed == rec.Seed {
		seed++
	}
	rec.Seed = seed
	rec.Generation++
	rec.UpdatedAt = s.opts.Now().UTC()

	solved, err := Solve(rec)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, rec); err != nil {
		s.logger.Error(fmt.Sprintf("Saving regenerated maze %s: %v", rec.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Regenerated maze %s (generation %d, seed %d)", rec.ID, rec.Generation, rec.Seed))
	return solved, nil
}

// Delete drops a stored maze. It waits on the same lock as Regenerate so a
// regeneration in flight cannot write the record back.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock, err := s.store.Lock(ctx, id)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Locking maze %s: %v", id, err))
		return err
	}
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error(fmt.Sprintf("Deleting maze %s: %v", id, err))
		return err
	}
	s.logger.Info(fmt.Sprintf("Deleted maze %s", id))
	return nil
}
