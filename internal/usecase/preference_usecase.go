package usecase

import (
	"context"

	"lapmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// InteractionKind distinguishes the two tracked interaction types.
type InteractionKind string

// Interaction kinds.
const (
	InteractionView InteractionKind = "view"
	InteractionSave InteractionKind = "save"
)

// TrackInteractionInput describes one view or save action on a laptop.
type TrackInteractionInput struct {
	LaptopID uuid.UUID
	Kind     InteractionKind
	Rating   *int   // optional, view only
	Note     string // optional, save only
}

// UpdatePreferencesInput carries a full replacement of the user's
// preference settings. The interaction logs are never edited this way.
type UpdatePreferencesInput struct {
	Budget      entity.BudgetPreference
	Performance entity.PerformancePreference
	Portability entity.PortabilityPreference
	Display     entity.DisplayPreference
	Battery     entity.BatteryPreference
}

// PreferenceUsecase defines preference-profile operations, including the
// interaction tracker feeding future recommendations.
type PreferenceUsecase interface {
	// GetPreferences retrieves the caller's preference profile.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.PreferenceProfile, error)

	// UpdatePreferences replaces the caller's preference settings.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input UpdatePreferencesInput) (*entity.PreferenceProfile, error)

	// TrackInteraction records a view or save. Views are deduplicated per
	// laptop (first view wins); saves always append.
	TrackInteraction(ctx context.Context, userID uuid.UUID, input TrackInteractionInput) error
}
