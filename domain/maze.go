// Package domain holds the records shared between the maze service and its stores.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrMazeBusy     = errors.New("maze is locked by another operation")
)

// MazeRecord is everything needed to rebuild a maze: generation is
// deterministic for a given seed, so walls, labels and path are not stored.
type MazeRecord struct {
	ID             uuid.UUID `json:"id"`
	Rows           int       `json:"rows"`
	Cols           int       `json:"cols"`
	VerticalProb   float64   `json:"vertical_prob"`
	HorizontalProb float64   `json:"horizontal_prob"`
	Seed           int64     `json:"seed"`
	Generation     int       `json:"generation"` // bumped by every regeneration
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
