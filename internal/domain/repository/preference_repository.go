// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lapmatch/internal/domain/entity"
	"lapmatch/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no preference profile exists for a user.
var ErrProfileNotFound = errors.New("preference profile not found")

// PreferenceRepository defines the operations on preference profiles and
// their interaction logs.
type PreferenceRepository interface {
	// GetProfile retrieves the preference profile of a user, including the
	// viewed and saved logs.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.PreferenceProfile, error)

	// CreateProfile persists a new preference profile (registration time).
	CreateProfile(ctx context.Context, profile *entity.PreferenceProfile) error

	// UpdateProfile overwrites the preference settings of an existing
	// profile. The interaction logs are not touched.
	UpdateProfile(ctx context.Context, profile *entity.PreferenceProfile) error

	// UpsertViewed appends a view-log entry unless one already exists for
	// the laptop. The insert-if-absent must be atomic at the store level so
	// concurrent views of the same laptop cannot produce duplicates.
	UpsertViewed(ctx context.Context, userID, laptopID uuid.UUID, rating *int) error

	// AppendSaved always appends a save-log entry; saves are a log of
	// discrete actions, not a set.
	AppendSaved(ctx context.Context, userID, laptopID uuid.UUID, note string) error

	// FindProfilesByUsageType retrieves up to limit profiles whose owning
	// user carries the given usage type, excluding excludeUserID.
	FindProfilesByUsageType(ctx context.Context, usageType string, excludeUserID uuid.UUID, limit int) ([]*entity.PreferenceProfile, error)

	// DeleteProfile removes a profile and its interaction logs (account
	// deletion cascade).
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}
