package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/usecase"

	mockRepo "lapmatch/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type preferenceServiceFixtures struct {
	preferenceRepo *mockRepo.MockPreferenceRepository
	service        usecase.PreferenceUsecase
}

func createTestPreferenceService(t *testing.T) preferenceServiceFixtures {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPreferenceService(PreferenceServiceParams{
		PreferenceRepo: preferenceRepo,
		Logger:         logger,
	})

	return preferenceServiceFixtures{
		preferenceRepo: preferenceRepo,
		service:        service,
	}
}

func TestPreferenceService_GetPreferences_Success(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := entity.NewDefaultProfile(userID)
	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(profile, nil)

	got, err := f.service.GetPreferences(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestPreferenceService_GetPreferences_NotFound(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	got, err := f.service.GetPreferences(ctx, userID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPreferenceService_UpdatePreferences_ReplacesSettingsOnly(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := entity.NewDefaultProfile(userID)
	existing.ViewedLaptops = []entity.ViewedLaptop{{LaptopID: uuid.New()}}

	input := usecase.UpdatePreferencesInput{
		Budget:      entity.BudgetPreference{Min: 900, Max: 1800, Currency: "EUR"},
		Performance: entity.PerformancePreference{Importance: 9, UsageTags: []string{"gaming"}},
		Portability: entity.PortabilityPreference{Importance: 3, MaxWeight: 3.0},
		Display:     entity.DisplayPreference{Importance: 6, MinSize: 15.6},
		Battery:     entity.BatteryPreference{Importance: 4, MinHours: 4},
	}

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(existing, nil)
	f.preferenceRepo.EXPECT().UpdateProfile(ctx, existing).Return(nil)

	got, err := f.service.UpdatePreferences(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Budget, got.Budget)
	assert.Equal(t, input.Performance, got.Performance)
	// Interaction logs are untouched by a settings update.
	assert.Len(t, got.ViewedLaptops, 1)
}

func TestPreferenceService_UpdatePreferences_RejectsInvertedBudget(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()

	input := usecase.UpdatePreferencesInput{
		Budget: entity.BudgetPreference{Min: 2000, Max: 1000},
	}

	got, err := f.service.UpdatePreferences(ctx, uuid.New(), input)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPreferenceService_TrackInteraction_ViewUpserts(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()
	laptopID := uuid.New()
	rating := 4

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).
		Return(entity.NewDefaultProfile(userID), nil)
	f.preferenceRepo.EXPECT().UpsertViewed(ctx, userID, laptopID, &rating).Return(nil)

	err := f.service.TrackInteraction(ctx, userID, usecase.TrackInteractionInput{
		LaptopID: laptopID,
		Kind:     usecase.InteractionView,
		Rating:   &rating,
	})

	require.NoError(t, err)
}

func TestPreferenceService_TrackInteraction_SaveAppends(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()
	laptopID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).
		Return(entity.NewDefaultProfile(userID), nil)
	f.preferenceRepo.EXPECT().AppendSaved(ctx, userID, laptopID, "for comparison").Return(nil)

	err := f.service.TrackInteraction(ctx, userID, usecase.TrackInteractionInput{
		LaptopID: laptopID,
		Kind:     usecase.InteractionSave,
		Note:     "for comparison",
	})

	require.NoError(t, err)
}

func TestPreferenceService_TrackInteraction_UnknownKind(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).
		Return(entity.NewDefaultProfile(userID), nil)

	err := f.service.TrackInteraction(ctx, userID, usecase.TrackInteractionInput{
		LaptopID: uuid.New(),
		Kind:     usecase.InteractionKind("purchase"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestPreferenceService_TrackInteraction_MissingProfile(t *testing.T) {
	f := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	err := f.service.TrackInteraction(ctx, userID, usecase.TrackInteractionInput{
		LaptopID: uuid.New(),
		Kind:     usecase.InteractionView,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
