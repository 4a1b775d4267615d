package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit   = 20
	defaultSearchLimit = 10
)

// laptopService implements the LaptopUsecase interface.
type laptopService struct {
	laptopRepo repository.LaptopRepository
	logger     *slog.Logger
}

// LaptopServiceParams holds dependencies for the laptop service, injected by Fx.
type LaptopServiceParams struct {
	fx.In

	LaptopRepo repository.LaptopRepository
	Logger     *slog.Logger
}

// NewLaptopService is the constructor for laptopService.
func NewLaptopService(params LaptopServiceParams) usecase.LaptopUsecase {
	return &laptopService{
		laptopRepo: params.LaptopRepo,
		logger:     params.Logger,
	}
}

// ListLaptops returns one page of the catalog with the basic filters applied.
func (srv *laptopService) ListLaptops(ctx context.Context, input usecase.ListLaptopsInput) (*usecase.ListLaptopsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	q := query.Query{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if len(input.Brands) > 0 {
		q.Must = append(q.Must, query.In(query.FieldBrand, loweredValues(input.Brands)))
	}
	if len(input.Categories) > 0 {
		q.Must = append(q.Must, query.In(query.FieldCategory, loweredValues(input.Categories)))
	}
	if input.MinPrice != nil || input.MaxPrice != nil {
		q.Must = append(q.Must, query.Range(query.FieldPrice, input.MinPrice, input.MaxPrice))
	}
	if input.MinRAM != nil || input.MaxRAM != nil {
		q.Must = append(q.Must, query.Range(query.FieldRAM, input.MinRAM, input.MaxRAM))
	}

	if s, ok := listSort(input.SortBy, input.SortOrder); ok {
		q.Sorts = append(q.Sorts, s)
	}

	laptops, err := srv.laptopRepo.FindMany(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list laptops")
	}

	total, err := srv.laptopRepo.Count(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count laptops")
	}

	return &usecase.ListLaptopsOutput{
		Laptops: laptops,
		Count:   len(laptops),
		Total:   total,
		Page:    page,
		Pages:   int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func listSort(sortBy, sortOrder string) (query.Sort, bool) {
	direction := query.Descending
	if strings.EqualFold(sortOrder, "asc") {
		direction = query.Ascending
	}

	switch sortBy {
	case "price":
		return query.Sort{Field: query.FieldPrice, Direction: direction}, true
	case "rating":
		return query.Sort{Field: query.FieldRating, Direction: direction}, true
	case "ram":
		return query.Sort{Field: query.FieldRAM, Direction: direction}, true
	default:
		return query.Sort{}, false
	}
}

// GetLaptop retrieves one catalog item.
func (srv *laptopService) GetLaptop(ctx context.Context, id uuid.UUID) (*entity.Laptop, error) {
	laptop, err := srv.laptopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLaptopNotFound) {
			return nil, domainerrors.ErrLaptopNotFound
		}

		return nil, errors.Wrap(err, "failed to load laptop")
	}

	return laptop, nil
}

// SearchLaptops runs a free-text search across the searchable columns.
func (srv *laptopService) SearchLaptops(ctx context.Context, text string, limit int) ([]*entity.Laptop, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	laptops, err := srv.laptopRepo.FindMany(ctx, query.Query{
		Must:  []query.Predicate{query.Text(text)},
		Limit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search laptops")
	}

	return laptops, nil
}

// FilterLaptops applies an advanced filter selection.
func (srv *laptopService) FilterLaptops(ctx context.Context, sel query.FilterSelection) ([]*entity.Laptop, error) {
	laptops, err := srv.laptopRepo.FindMany(ctx, query.Build(sel))
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter laptops")
	}

	return laptops, nil
}

// GetByBrand lists catalog items of one brand.
func (srv *laptopService) GetByBrand(ctx context.Context, brand string, limit int) ([]*entity.Laptop, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}

	laptops, err := srv.laptopRepo.FindMany(ctx, query.Query{
		Must:  []query.Predicate{query.Equals(query.FieldBrand, strings.ToLower(brand))},
		Limit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list laptops by brand")
	}

	return laptops, nil
}

// GetByCategory lists catalog items of one category.
func (srv *laptopService) GetByCategory(ctx context.Context, category string, limit int) ([]*entity.Laptop, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}

	laptops, err := srv.laptopRepo.FindMany(ctx, query.Query{
		Must:  []query.Predicate{query.Equals(query.FieldCategory, strings.ToLower(category))},
		Limit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list laptops by category")
	}

	return laptops, nil
}

// GetStats computes catalog-wide aggregates.
func (srv *laptopService) GetStats(ctx context.Context) (*usecase.CatalogStatsOutput, error) {
	stats, brandStats, categoryStats, err := srv.laptopRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute catalog stats")
	}

	return &usecase.CatalogStatsOutput{
		Stats:         stats,
		BrandStats:    brandStats,
		CategoryStats: categoryStats,
	}, nil
}

// CreateLaptop persists a new catalog item after basic validation.
func (srv *laptopService) CreateLaptop(ctx context.Context, laptop *entity.Laptop) error {
	if err := validateLaptop(laptop); err != nil {
		return err
	}

	if laptop.ID == uuid.Nil {
		laptop.ID = uuid.New()
	}

	if err := srv.laptopRepo.Create(ctx, laptop); err != nil {
		return errors.Wrap(err, "failed to create laptop")
	}

	srv.logger.Info("Laptop created", slog.Any("laptopID", laptop.ID), slog.String("name", laptop.Name))

	return nil
}

// BulkCreateLaptops persists several catalog items at once and returns the
// number created. All items are validated up front; one bad record fails
// the whole batch.
func (srv *laptopService) BulkCreateLaptops(ctx context.Context, laptops []*entity.Laptop) (int, error) {
	if len(laptops) == 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("laptops array is required")
	}

	for _, laptop := range laptops {
		if err := validateLaptop(laptop); err != nil {
			return 0, err
		}
		if laptop.ID == uuid.Nil {
			laptop.ID = uuid.New()
		}
	}

	if err := srv.laptopRepo.CreateBatch(ctx, laptops); err != nil {
		return 0, errors.Wrap(err, "failed to bulk create laptops")
	}

	srv.logger.Info("Laptops bulk created", slog.Int("count", len(laptops)))

	return len(laptops), nil
}

// UpdateLaptop modifies an existing catalog item.
func (srv *laptopService) UpdateLaptop(ctx context.Context, laptop *entity.Laptop) error {
	if err := validateLaptop(laptop); err != nil {
		return err
	}

	if err := srv.laptopRepo.Update(ctx, laptop); err != nil {
		if errors.Is(err, repository.ErrLaptopNotFound) {
			return domainerrors.ErrLaptopNotFound
		}

		return errors.Wrap(err, "failed to update laptop")
	}

	return nil
}

// DeleteLaptop removes a catalog item.
func (srv *laptopService) DeleteLaptop(ctx context.Context, id uuid.UUID) error {
	if err := srv.laptopRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLaptopNotFound) {
			return domainerrors.ErrLaptopNotFound
		}

		return errors.Wrap(err, "failed to delete laptop")
	}

	srv.logger.Info("Laptop deleted", slog.Any("laptopID", id))

	return nil
}

func validateLaptop(laptop *entity.Laptop) error {
	switch {
	case laptop == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("laptop payload is required")
	case laptop.Name == "":
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	case laptop.Brand == "":
		return domainerrors.ErrValidationFailed.WrapMessage("brand is required")
	case laptop.Model == "":
		return domainerrors.ErrValidationFailed.WrapMessage("model is required")
	case laptop.Price.Current < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	case laptop.Price.Original < laptop.Price.Current:
		return domainerrors.ErrValidationFailed.WrapMessage("original price must not be below current price")
	case laptop.Rating.Average < 0 || laptop.Rating.Average > 5:
		return domainerrors.ErrValidationFailed.WrapMessage("rating average must be within [0,5]")
	}

	return nil
}

func loweredValues(values []string) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		result = append(result, strings.ToLower(strings.TrimSpace(v)))
	}

	return result
}
