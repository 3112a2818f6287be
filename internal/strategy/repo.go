package strategy

import (
	"context"
	"errors"
)

// ErrNotFound marks a missing run record.
var ErrNotFound = errors.New("not found")

// Repo stores compose run history.
type Repo interface {
	Create(ctx context.Context, run Run) error
	GetByID(ctx context.Context, runID string) (Run, error)
	List(ctx context.Context, limit, offset int) ([]Run, error)
}
