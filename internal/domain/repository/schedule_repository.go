package repository

import (
	"context"

	"transcontrol-service/internal/domain/entity"
)

// ScheduleRepository defines the interface for daily schedule operations
type ScheduleRepository interface {
	// List returns all schedules ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.Schedule, error)
	FindByID(ctx context.Context, id string) (*entity.Schedule, error)
	// CountByDate counts the schedules already present for a calendar date.
	// Feeds the auto-numbered title at creation time.
	CountByDate(ctx context.Context, date string) (int, error)
	Create(ctx context.Context, schedule entity.Schedule) (string, error)
	// ReplaceVehicles rewrites the embedded vehicle list of one schedule.
	ReplaceVehicles(ctx context.Context, id string, vehicles []entity.VehicleAssignment) error
	Delete(ctx context.Context, id string) error
}
