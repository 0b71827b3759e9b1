package repository

import (
	"context"

	"transcontrol-service/internal/domain/entity"
)

// StatusEntryRepository defines the interface for worksheet row operations
type StatusEntryRepository interface {
	List(ctx context.Context) ([]entity.StatusEntry, error)
	Create(ctx context.Context, entry entity.StatusEntry) (string, error)
	// CreateBatch persists every entry and returns how many were written
	// before the first failure.
	CreateBatch(ctx context.Context, entries []entity.StatusEntry) (int, error)
	// Update applies a partial field update to one row.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
