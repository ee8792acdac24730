package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// MazeStore keeps maze records for a limited time.
type MazeStore interface {
	// Save inserts or replaces a record and resets its expiry.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID returns the record or dmn.ErrMazeNotFound once it has expired.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock takes an exclusive lock on id and returns the function releasing it.
	// It fails with dmn.ErrMazeBusy when someone else holds the lock.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}
