package impl

import (
	"context"
	"log/slog"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// PreferenceServiceParams holds dependencies for the preference service, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PreferenceRepo repository.PreferenceRepository
	Logger         *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: params.PreferenceRepo,
		logger:         params.Logger,
	}
}

// GetPreferences retrieves the caller's preference profile.
func (srv *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.PreferenceProfile, error) {
	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile")
	}

	return profile, nil
}

// UpdatePreferences replaces the preference settings of an existing profile.
func (srv *preferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input usecase.UpdatePreferencesInput) (*entity.PreferenceProfile, error) {
	if input.Budget.Min > input.Budget.Max {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("budget minimum exceeds maximum")
	}

	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile")
	}

	profile.Budget = input.Budget
	profile.Performance = input.Performance
	profile.Portability = input.Portability
	profile.Display = input.Display
	profile.Battery = input.Battery

	if err := srv.preferenceRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update preference profile")
	}

	srv.logger.Debug("Preferences updated", slog.Any("userID", userID))

	return profile, nil
}

// TrackInteraction records a view or save event against the profile.
// A view is an atomic insert-if-absent keyed on (user, laptop): the first
// view wins and the store-level upsert makes concurrent duplicates
// impossible. A save always appends.
func (srv *preferenceService) TrackInteraction(ctx context.Context, userID uuid.UUID, input usecase.TrackInteractionInput) error {
	// Profile provisioning happens at registration; a missing profile is
	// the caller's problem, not something to repair here.
	if _, err := srv.preferenceRepo.GetProfile(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to load preference profile")
	}

	switch input.Kind {
	case usecase.InteractionView:
		if err := srv.preferenceRepo.UpsertViewed(ctx, userID, input.LaptopID, input.Rating); err != nil {
			return errors.Wrap(err, "failed to record view")
		}
	case usecase.InteractionSave:
		if err := srv.preferenceRepo.AppendSaved(ctx, userID, input.LaptopID, input.Note); err != nil {
			return errors.Wrap(err, "failed to record save")
		}
	default:
		return domainerrors.ErrInvalidInput.WrapMessage("unknown interaction kind")
	}

	srv.logger.Debug("Interaction tracked",
		slog.Any("userID", userID),
		slog.Any("laptopID", input.LaptopID),
		slog.String("kind", string(input.Kind)),
	)

	return nil
}
