package usecase

import (
	"context"

	"lapmatch/internal/domain/entity"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/domain/repository"

	"github.com/google/uuid"
)

// ListLaptopsInput holds pagination, sorting and the basic query-string
// filters of the catalog listing.
type ListLaptopsInput struct {
	Page       int
	Limit      int
	SortBy     string // name | price | rating | created_at
	SortOrder  string // asc | desc
	Brands     []string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	MinRAM     *float64
	MaxRAM     *float64
}

// ListLaptopsOutput is a paginated catalog page.
type ListLaptopsOutput struct {
	Laptops []*entity.Laptop `json:"laptops"`
	Count   int              `json:"count"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
}

// CatalogStatsOutput aggregates the catalog.
type CatalogStatsOutput struct {
	Stats         *repository.LaptopStats   `json:"stats"`
	BrandStats    []repository.BrandStat    `json:"brand_stats"`
	CategoryStats []repository.CategoryStat `json:"category_stats"`
}

// LaptopUsecase defines the catalog operations. The read side feeds the
// storefront; the write side is admin-only.
type LaptopUsecase interface {
	ListLaptops(ctx context.Context, input ListLaptopsInput) (*ListLaptopsOutput, error)
	GetLaptop(ctx context.Context, id uuid.UUID) (*entity.Laptop, error)
	SearchLaptops(ctx context.Context, text string, limit int) ([]*entity.Laptop, error)
	FilterLaptops(ctx context.Context, sel query.FilterSelection) ([]*entity.Laptop, error)
	GetByBrand(ctx context.Context, brand string, limit int) ([]*entity.Laptop, error)
	GetByCategory(ctx context.Context, category string, limit int) ([]*entity.Laptop, error)
	GetStats(ctx context.Context) (*CatalogStatsOutput, error)

	CreateLaptop(ctx context.Context, laptop *entity.Laptop) error
	BulkCreateLaptops(ctx context.Context, laptops []*entity.Laptop) (int, error)
	UpdateLaptop(ctx context.Context, laptop *entity.Laptop) error
	DeleteLaptop(ctx context.Context, id uuid.UUID) error
}
