// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// laptopRepository implements the domain.LaptopRepository interface using GORM.
type laptopRepository struct {
	db *gorm.DB
}

// NewLaptopRepository is the constructor for laptopRepository.
// It returns the repository as a domain.LaptopRepository interface, adhering to dependency inversion.
func NewLaptopRepository(db *gorm.DB) repository.LaptopRepository {
	return &laptopRepository{db: db}
}

// FindMany retrieves the laptops matching the structured predicate set.
func (repo *laptopRepository) FindMany(ctx context.Context, catalogQuery query.Query) ([]*entity.Laptop, error) {
	var models []model.LaptopModel
	db := applyQuery(repo.db.WithContext(ctx).Model(&model.LaptopModel{}), catalogQuery, true)
	if err := db.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query laptops")
	}

	laptops := make([]*entity.Laptop, 0, len(models))
	for i := range models {
		laptops = append(laptops, toLaptopDomain(&models[i]))
	}

	return laptops, nil
}

// Count returns how many laptops match the predicate set, ignoring pagination.
func (repo *laptopRepository) Count(ctx context.Context, catalogQuery query.Query) (int64, error) {
	var count int64
	db := applyQuery(repo.db.WithContext(ctx).Model(&model.LaptopModel{}), catalogQuery, false)
	if err := db.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count laptops")
	}

	return count, nil
}

// FindByID retrieves a single laptop by its unique ID.
func (repo *laptopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Laptop, error) {
	var laptopM model.LaptopModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&laptopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLaptopNotFound
		}

		return nil, errors.Wrap(err, "failed to find laptop by id")
	}

	return toLaptopDomain(&laptopM), nil
}

// FindByIDs retrieves the laptops whose IDs appear in ids, up to limit.
// Missing IDs are skipped silently; catalog items may have been removed
// since the interaction log referenced them.
func (repo *laptopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, limit int) ([]*entity.Laptop, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.LaptopModel
	db := repo.db.WithContext(ctx).Where("id IN ?", ids)
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find laptops by ids")
	}

	// Restore the caller's ordering; IN does not preserve it.
	byID := make(map[uuid.UUID]*model.LaptopModel, len(models))
	for i := range models {
		byID[models[i].ID] = &models[i]
	}

	laptops := make([]*entity.Laptop, 0, len(models))
	for _, id := range ids {
		if laptopM, ok := byID[id]; ok {
			laptops = append(laptops, toLaptopDomain(laptopM))
		}
	}

	return laptops, nil
}

// Create persists a new laptop.
func (repo *laptopRepository) Create(ctx context.Context, laptop *entity.Laptop) error {
	laptopM := fromLaptopDomain(laptop)

	if err := repo.db.WithContext(ctx).Create(laptopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLaptopCreationFailed.WrapMessage("laptop already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLaptopCreationFailed.WrapMessage("missing required laptop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create laptop")
	}

	laptop.CreatedAt = laptopM.CreatedAt
	laptop.UpdatedAt = laptopM.UpdatedAt

	return nil
}

// CreateBatch persists several laptops in one insert. All-or-nothing.
func (repo *laptopRepository) CreateBatch(ctx context.Context, laptops []*entity.Laptop) error {
	if len(laptops) == 0 {
		return nil
	}

	models := make([]*model.LaptopModel, 0, len(laptops))
	for _, laptop := range laptops {
		models = append(models, fromLaptopDomain(laptop))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLaptopCreationFailed.WrapMessage("duplicate laptop in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create laptop batch")
	}

	for i, laptop := range laptops {
		laptop.CreatedAt = models[i].CreatedAt
		laptop.UpdatedAt = models[i].UpdatedAt
	}

	return nil
}

// Update modifies an existing laptop.
func (repo *laptopRepository) Update(ctx context.Context, laptop *entity.Laptop) error {
	laptopM := fromLaptopDomain(laptop)

	// Select("*") forces zero values (false flags, zero stock) to be written.
	result := repo.db.WithContext(ctx).Model(&model.LaptopModel{}).
		Where("id = ?", laptop.ID).
		Select("*").Omit("id", "created_at").
		Updates(laptopM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update laptop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLaptopNotFound
	}

	return nil
}

// Delete removes a laptop from the catalog.
func (repo *laptopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LaptopModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete laptop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLaptopNotFound
	}

	return nil
}

// Stats computes catalog-wide aggregates in three grouped queries.
func (repo *laptopRepository) Stats(ctx context.Context) (*repository.LaptopStats, []repository.BrandStat, []repository.CategoryStat, error) {
	var overall repository.LaptopStats
	err := repo.db.WithContext(ctx).Model(&model.LaptopModel{}).
		Select("COUNT(*) AS total_laptops, " +
			"COALESCE(AVG(price_current), 0) AS avg_price, " +
			"COALESCE(MIN(price_current), 0) AS min_price, " +
			"COALESCE(MAX(price_current), 0) AS max_price, " +
			"COALESCE(AVG(rating_average), 0) AS avg_rating").
		Scan(&overall).Error
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to compute catalog stats")
	}

	var brands []repository.BrandStat
	err = repo.db.WithContext(ctx).Model(&model.LaptopModel{}).
		Select("brand, COUNT(*) AS count, COALESCE(AVG(price_current), 0) AS avg_price").
		Group("brand").
		Order("count DESC").
		Scan(&brands).Error
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to compute brand stats")
	}

	var categories []repository.CategoryStat
	err = repo.db.WithContext(ctx).Model(&model.LaptopModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&categories).Error
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to compute category stats")
	}

	return &overall, brands, categories, nil
}

// toLaptopDomain maps a persistence model back to a pure domain entity.
func toLaptopDomain(data *model.LaptopModel) *entity.Laptop {
	return &entity.Laptop{
		ID:       data.ID,
		Name:     data.Name,
		Brand:    entity.Brand(data.Brand),
		Model:    data.Model,
		Category: entity.Category(data.Category),
		Price: entity.Price{
			Current:  data.PriceCurrent,
			Original: data.PriceOriginal,
			Currency: data.PriceCurrency,
		},
		Specifications: entity.Specifications{
			RAM:         data.RAM,
			Storage:     data.Storage,
			Processor:   data.Processor,
			GPU:         data.GPU,
			DisplaySize: data.DisplaySize,
			Resolution:  data.Resolution,
			RefreshRate: data.RefreshRate,
			Weight:      data.Weight,
			BatteryLife: data.BatteryLife,
		},
		Features: entity.Features{
			Touchscreen:        data.Touchscreen,
			IPS:                data.IPS,
			BacklitKeyboard:    data.BacklitKeyboard,
			FingerprintScanner: data.FingerprintScanner,
		},
		Rating: entity.Rating{
			Average: data.RatingAverage,
			Count:   data.RatingCount,
		},
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLaptopDomain maps a pure domain entity to a GORM persistence model.
func fromLaptopDomain(data *entity.Laptop) *model.LaptopModel {
	return &model.LaptopModel{
		ID:                 data.ID,
		Name:               data.Name,
		Brand:              string(data.Brand),
		Model:              data.Model,
		Category:           string(data.Category),
		PriceCurrent:       data.Price.Current,
		PriceOriginal:      data.Price.Original,
		PriceCurrency:      data.Price.Currency,
		RAM:                data.Specifications.RAM,
		Storage:            data.Specifications.Storage,
		Processor:          data.Specifications.Processor,
		GPU:                data.Specifications.GPU,
		DisplaySize:        data.Specifications.DisplaySize,
		Resolution:         data.Specifications.Resolution,
		RefreshRate:        data.Specifications.RefreshRate,
		Weight:             data.Specifications.Weight,
		BatteryLife:        data.Specifications.BatteryLife,
		Touchscreen:        data.Features.Touchscreen,
		IPS:                data.Features.IPS,
		BacklitKeyboard:    data.Features.BacklitKeyboard,
		FingerprintScanner: data.Features.FingerprintScanner,
		RatingAverage:      data.Rating.Average,
		RatingCount:        data.Rating.Count,
		Stock:              data.Stock,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
