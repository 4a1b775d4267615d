// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/infra/persistence/model"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the domain.PreferenceRepository interface using GORM.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// GetProfile retrieves the preference profile of a user, including both
// interaction logs.
func (repo *preferenceRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.PreferenceProfile, error) {
	var profileM model.UserPreferenceModel
	err := repo.db.WithContext(ctx).
		Preload("ViewedLaptops", func(db *gorm.DB) *gorm.DB {
			return db.Order("viewed_at DESC")
		}).
		Preload("SavedLaptops", func(db *gorm.DB) *gorm.DB {
			return db.Order("saved_at DESC")
		}).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference profile")
	}

	return toProfileDomain(&profileM)
}

// CreateProfile persists a new preference profile.
func (repo *preferenceRepository) CreateProfile(ctx context.Context, profile *entity.PreferenceProfile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("preference profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create preference profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateProfile overwrites the preference settings of an existing profile.
// The interaction log associations are deliberately omitted.
func (repo *preferenceRepository) UpdateProfile(ctx context.Context, profile *entity.PreferenceProfile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Model(&model.UserPreferenceModel{}).
		Where("user_id = ?", profile.UserID).
		Select("*").Omit("user_id").
		Updates(profileM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update preference profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpsertViewed inserts a view-log entry unless one already exists for the
// (user, laptop) pair. ON CONFLICT DO NOTHING on the unique index makes the
// first view win atomically, concurrent inserts included.
func (repo *preferenceRepository) UpsertViewed(ctx context.Context, userID, laptopID uuid.UUID, rating *int) error {
	entry := model.ViewedLaptopModel{
		UserID:   userID,
		LaptopID: laptopID,
		ViewedAt: time.Now(),
		Rating:   rating,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "laptop_id"}},
			DoNothing: true,
		}).
		Create(&entry).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("unknown user or laptop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record laptop view")
	}

	return nil
}

// AppendSaved always appends a save-log entry.
func (repo *preferenceRepository) AppendSaved(ctx context.Context, userID, laptopID uuid.UUID, note string) error {
	entry := model.SavedLaptopModel{
		UserID:   userID,
		LaptopID: laptopID,
		SavedAt:  time.Now(),
		Note:     note,
	}

	if err := repo.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("unknown user or laptop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record laptop save")
	}

	return nil
}

// FindProfilesByUsageType retrieves up to limit profiles whose owning user
// carries the given usage type, excluding excludeUserID.
func (repo *preferenceRepository) FindProfilesByUsageType(ctx context.Context, usageType string, excludeUserID uuid.UUID, limit int) ([]*entity.PreferenceProfile, error) {
	var profileModels []model.UserPreferenceModel
	err := repo.db.WithContext(ctx).Model(&model.UserPreferenceModel{}).
		Joins("JOIN users ON users.id = user_preferences.user_id").
		Where("users.usage_type = ?", usageType).
		Where("user_preferences.user_id <> ?", excludeUserID).
		Limit(limit).
		Preload("ViewedLaptops", func(db *gorm.DB) *gorm.DB {
			return db.Order("viewed_at DESC")
		}).
		Preload("SavedLaptops", func(db *gorm.DB) *gorm.DB {
			return db.Order("saved_at DESC")
		}).
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by usage type")
	}

	profiles := make([]*entity.PreferenceProfile, 0, len(profileModels))
	for i := range profileModels {
		profile, err := toProfileDomain(&profileModels[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// DeleteProfile removes a profile; the interaction logs cascade.
func (repo *preferenceRepository) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserPreferenceModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete preference profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toProfileDomain maps a persistence model back to a pure domain entity.
func toProfileDomain(data *model.UserPreferenceModel) (*entity.PreferenceProfile, error) {
	var usageTags []string
	if len(data.UsageTags) > 0 {
		if err := json.Unmarshal(data.UsageTags, &usageTags); err != nil {
			return nil, errors.Wrap(err, "failed to decode usage tags")
		}
	}

	viewed := make([]entity.ViewedLaptop, 0, len(data.ViewedLaptops))
	for _, entry := range data.ViewedLaptops {
		viewed = append(viewed, entity.ViewedLaptop{
			LaptopID: entry.LaptopID,
			ViewedAt: entry.ViewedAt,
			Rating:   entry.Rating,
		})
	}

	saved := make([]entity.SavedLaptop, 0, len(data.SavedLaptops))
	for _, entry := range data.SavedLaptops {
		saved = append(saved, entity.SavedLaptop{
			LaptopID: entry.LaptopID,
			SavedAt:  entry.SavedAt,
			Note:     entry.Note,
		})
	}

	return &entity.PreferenceProfile{
		UserID: data.UserID,
		Budget: entity.BudgetPreference{
			Min:      data.BudgetMin,
			Max:      data.BudgetMax,
			Currency: data.BudgetCurrency,
		},
		Performance: entity.PerformancePreference{
			Importance: data.PerformanceImportance,
			UsageTags:  usageTags,
		},
		Portability: entity.PortabilityPreference{
			Importance: data.PortabilityImportance,
			MaxWeight:  data.MaxWeight,
		},
		Display: entity.DisplayPreference{
			Importance:      data.DisplayImportance,
			MinSize:         data.MinDisplaySize,
			Touchscreen:     data.Touchscreen,
			HighRefreshRate: data.HighRefreshRate,
		},
		Battery: entity.BatteryPreference{
			Importance: data.BatteryImportance,
			MinHours:   data.MinBatteryHours,
		},
		ViewedLaptops: viewed,
		SavedLaptops:  saved,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromProfileDomain maps a pure domain entity to a GORM persistence model.
// The interaction logs are managed through their own operations and never
// written through the profile.
func fromProfileDomain(data *entity.PreferenceProfile) (*model.UserPreferenceModel, error) {
	var usageTags []byte
	if len(data.Performance.UsageTags) > 0 {
		encoded, err := json.Marshal(data.Performance.UsageTags)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode usage tags")
		}
		usageTags = encoded
	}

	return &model.UserPreferenceModel{
		UserID:                data.UserID,
		BudgetMin:             data.Budget.Min,
		BudgetMax:             data.Budget.Max,
		BudgetCurrency:        data.Budget.Currency,
		PerformanceImportance: data.Performance.Importance,
		UsageTags:             usageTags,
		PortabilityImportance: data.Portability.Importance,
		MaxWeight:             data.Portability.MaxWeight,
		DisplayImportance:     data.Display.Importance,
		MinDisplaySize:        data.Display.MinSize,
		Touchscreen:           data.Display.Touchscreen,
		HighRefreshRate:       data.Display.HighRefreshRate,
		BatteryImportance:     data.Battery.Importance,
		MinBatteryHours:       data.Battery.MinHours,
		UpdatedAt:             data.UpdatedAt,
	}, nil
}
