package repository

import (
	"context"

	"transcontrol-service/internal/domain/entity"
)

// PreRegistrationRepository defines the interface for the suggestion-list
// singleton document.
type PreRegistrationRepository interface {
	// Get returns the singleton document, or an all-empty default when it
	// does not exist yet.
	Get(ctx context.Context) (*entity.PreRegistrationData, error)
	// Save creates the singleton if absent, otherwise updates it in place.
	// There is no guard against two concurrent first writes creating two
	// documents; Get always reads the first one.
	Save(ctx context.Context, data *entity.PreRegistrationData) error
}
