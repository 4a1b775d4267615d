// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"lapmatch/internal/domain/entity"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/errors"

	"github.com/google/uuid"
)

// ErrLaptopNotFound is a domain-specific error returned when a laptop is not found.
var ErrLaptopNotFound = errors.New("laptop not found")

// LaptopStats aggregates the catalog for the stats endpoint.
type LaptopStats struct {
	TotalLaptops int     `json:"total_laptops"`
	AvgPrice     float64 `json:"avg_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	AvgRating    float64 `json:"avg_rating"`
}

// BrandStat is the per-brand slice of the catalog statistics.
type BrandStat struct {
	Brand    string  `json:"brand"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
}

// CategoryStat is the per-category slice of the catalog statistics.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// LaptopRepository defines the standard operations for catalog persistence.
// The recommendation core only ever reads through FindMany/FindByID/FindByIDs;
// the mutating operations back the admin catalog endpoints.
type LaptopRepository interface {
	// FindMany retrieves laptops matching the structured predicate set.
	FindMany(ctx context.Context, q query.Query) ([]*entity.Laptop, error)

	// Count returns the number of laptops matching the predicate set,
	// ignoring its limit/offset.
	Count(ctx context.Context, q query.Query) (int64, error)

	// FindByID retrieves a single laptop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Laptop, error)

	// FindByIDs retrieves the laptops whose IDs appear in ids, up to limit.
	FindByIDs(ctx context.Context, ids []uuid.UUID, limit int) ([]*entity.Laptop, error)

	// Create persists a new laptop.
	Create(ctx context.Context, laptop *entity.Laptop) error

	// CreateBatch persists several laptops at once (seeding / bulk import).
	CreateBatch(ctx context.Context, laptops []*entity.Laptop) error

	// Update modifies an existing laptop.
	Update(ctx context.Context, laptop *entity.Laptop) error

	// Delete removes a laptop from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats computes catalog-wide aggregates.
	Stats(ctx context.Context) (*LaptopStats, []BrandStat, []CategoryStat, error)
}
