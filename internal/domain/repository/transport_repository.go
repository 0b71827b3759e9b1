package repository

import (
	"context"

	"transcontrol-service/internal/domain/entity"
)

// TransportRepository defines the interface for imported transport records
type TransportRepository interface {
	List(ctx context.Context) ([]entity.TransportRecord, error)
	// CreateBatch persists every record and returns how many were written
	// before the first failure.
	CreateBatch(ctx context.Context, records []entity.TransportRecord) (int, error)
	DeleteAll(ctx context.Context) error
}
