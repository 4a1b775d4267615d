package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/usecase"

	mockRepo "lapmatch/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type laptopServiceFixtures struct {
	laptopRepo *mockRepo.MockLaptopRepository
	service    usecase.LaptopUsecase
}

func createTestLaptopService(t *testing.T) laptopServiceFixtures {
	laptopRepo := mockRepo.NewMockLaptopRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLaptopService(LaptopServiceParams{
		LaptopRepo: laptopRepo,
		Logger:     logger,
	})

	return laptopServiceFixtures{
		laptopRepo: laptopRepo,
		service:    service,
	}
}

func validLaptop() *entity.Laptop {
	return &entity.Laptop{
		Name:     "XPS 13",
		Brand:    entity.BrandDell,
		Model:    "9340",
		Category: entity.CategoryUltrabook,
		Price:    entity.Price{Current: 1299, Original: 1399, Currency: "EUR"},
		Rating:   entity.Rating{Average: 4.5, Count: 120},
	}
}

func TestLaptopService_ListLaptops_NormalizesPagination(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	laptops := []*entity.Laptop{validLaptop(), validLaptop()}

	f.laptopRepo.EXPECT().FindMany(ctx, mock.AnythingOfType("query.Query")).
		Run(func(_ context.Context, q query.Query) {
			assert.Equal(t, defaultPageLimit, q.Limit)
			assert.Equal(t, 0, q.Offset)
		}).
		Return(laptops, nil)
	f.laptopRepo.EXPECT().Count(ctx, mock.AnythingOfType("query.Query")).Return(int64(42), nil)

	output, err := f.service.ListLaptops(ctx, usecase.ListLaptopsInput{Page: 0, Limit: -5})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, int64(42), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 3, output.Pages)
}

func TestLaptopService_ListLaptops_BuildsFiltersAndSort(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	f.laptopRepo.EXPECT().FindMany(ctx, mock.AnythingOfType("query.Query")).
		Run(func(_ context.Context, q query.Query) {
			require.Len(t, q.Must, 3)
			assert.Equal(t, []any{"dell", "hp"}, q.Must[0].Values)
			assert.Equal(t, query.FieldCategory, q.Must[1].Field)
			assert.Equal(t, query.FieldPrice, q.Must[2].Field)
			require.Len(t, q.Sorts, 1)
			assert.Equal(t, query.Sort{Field: query.FieldPrice, Direction: query.Ascending}, q.Sorts[0])
			assert.Equal(t, 10, q.Offset)
		}).
		Return(nil, nil)
	f.laptopRepo.EXPECT().Count(ctx, mock.AnythingOfType("query.Query")).Return(int64(0), nil)

	_, err := f.service.ListLaptops(ctx, usecase.ListLaptopsInput{
		Page:       2,
		Limit:      10,
		SortBy:     "price",
		SortOrder:  "asc",
		Brands:     []string{"Dell", "HP"},
		Categories: []string{"gaming"},
		MaxPrice:   query.Float(2000),
	})

	require.NoError(t, err)
}

func TestLaptopService_SearchLaptops_RequiresText(t *testing.T) {
	f := createTestLaptopService(t)

	laptops, err := f.service.SearchLaptops(context.Background(), "   ", 10)

	assert.Nil(t, laptops)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLaptopService_SearchLaptops_DefaultsLimit(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	f.laptopRepo.EXPECT().FindMany(ctx, query.Query{
		Must:  []query.Predicate{query.Text("macbook")},
		Limit: defaultSearchLimit,
	}).Return([]*entity.Laptop{validLaptop()}, nil)

	laptops, err := f.service.SearchLaptops(ctx, " macbook ", 0)

	require.NoError(t, err)
	assert.Len(t, laptops, 1)
}

func TestLaptopService_GetByBrand_LowercasesBrand(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	f.laptopRepo.EXPECT().FindMany(ctx, query.Query{
		Must:  []query.Predicate{query.Equals(query.FieldBrand, "lenovo")},
		Limit: defaultPageLimit,
	}).Return(nil, nil)

	_, err := f.service.GetByBrand(ctx, "Lenovo", 0)

	require.NoError(t, err)
}

func TestLaptopService_GetLaptop_NotFound(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()
	id := uuid.New()

	f.laptopRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrLaptopNotFound)

	laptop, err := f.service.GetLaptop(ctx, id)

	assert.Nil(t, laptop)
	assert.ErrorIs(t, err, domainerrors.ErrLaptopNotFound)
}

func TestLaptopService_CreateLaptop_AssignsID(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	laptop := validLaptop()
	f.laptopRepo.EXPECT().Create(ctx, laptop).Return(nil)

	err := f.service.CreateLaptop(ctx, laptop)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, laptop.ID)
}

func TestLaptopService_CreateLaptop_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Laptop)
	}{
		{"missing name", func(l *entity.Laptop) { l.Name = "" }},
		{"missing brand", func(l *entity.Laptop) { l.Brand = "" }},
		{"missing model", func(l *entity.Laptop) { l.Model = "" }},
		{"negative price", func(l *entity.Laptop) { l.Price.Current = -1 }},
		{"original below current", func(l *entity.Laptop) { l.Price.Original = l.Price.Current - 100 }},
		{"rating out of range", func(l *entity.Laptop) { l.Rating.Average = 5.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestLaptopService(t)

			laptop := validLaptop()
			tt.mutate(laptop)

			err := f.service.CreateLaptop(context.Background(), laptop)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestLaptopService_BulkCreateLaptops_EmptyBatchRejected(t *testing.T) {
	f := createTestLaptopService(t)

	created, err := f.service.BulkCreateLaptops(context.Background(), nil)

	assert.Zero(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLaptopService_BulkCreateLaptops_OneBadRecordFailsBatch(t *testing.T) {
	f := createTestLaptopService(t)

	bad := validLaptop()
	bad.Name = ""

	created, err := f.service.BulkCreateLaptops(context.Background(), []*entity.Laptop{validLaptop(), bad})

	assert.Zero(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLaptopService_BulkCreateLaptops_Success(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	laptops := []*entity.Laptop{validLaptop(), validLaptop()}
	f.laptopRepo.EXPECT().CreateBatch(ctx, laptops).Return(nil)

	created, err := f.service.BulkCreateLaptops(ctx, laptops)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	for _, laptop := range laptops {
		assert.NotEqual(t, uuid.Nil, laptop.ID)
	}
}

func TestLaptopService_UpdateLaptop_NotFound(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	laptop := validLaptop()
	laptop.ID = uuid.New()
	f.laptopRepo.EXPECT().Update(ctx, laptop).Return(repository.ErrLaptopNotFound)

	err := f.service.UpdateLaptop(ctx, laptop)

	assert.ErrorIs(t, err, domainerrors.ErrLaptopNotFound)
}

func TestLaptopService_GetStats(t *testing.T) {
	f := createTestLaptopService(t)
	ctx := context.Background()

	stats := &repository.LaptopStats{TotalLaptops: 10, AvgPrice: 1200}
	brands := []repository.BrandStat{{Brand: "dell", Count: 4, AvgPrice: 1100}}
	categories := []repository.CategoryStat{{Category: "ultrabook", Count: 6}}

	f.laptopRepo.EXPECT().Stats(ctx).Return(stats, brands, categories, nil)

	output, err := f.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, output.Stats)
	assert.Equal(t, brands, output.BrandStats)
	assert.Equal(t, categories, output.CategoryStats)
}
