package usecase

import (
	"context"
	"time"

	"lapmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	UsageType string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// ViewedLaptopDetail is a view-log entry joined with its catalog item.
// Laptop is nil when the item has since left the catalog.
type ViewedLaptopDetail struct {
	entity.ViewedLaptop
	Laptop *entity.Laptop `json:"laptop"`
}

// SavedLaptopDetail is a save-log entry joined with its catalog item.
type SavedLaptopDetail struct {
	entity.SavedLaptop
	Laptop *entity.Laptop `json:"laptop"`
}

// Activity entry kinds.
const (
	ActivityTypeView = "view"
	ActivityTypeSave = "save"
)

// ActivityInput paginates the interaction history.
type ActivityInput struct {
	Page  int
	Limit int
}

// ActivityEntry is one interaction, a view or a save, joined with its
// catalog item. Laptop is nil when the item has since left the catalog.
type ActivityEntry struct {
	Type     string         `json:"type"`
	Date     time.Time      `json:"date"`
	LaptopID uuid.UUID      `json:"laptop_id"`
	Rating   *int           `json:"rating,omitempty"`
	Note     string         `json:"note,omitempty"`
	Laptop   *entity.Laptop `json:"laptop"`
}

// ActivityOutput is one page of the merged interaction history,
// newest first.
type ActivityOutput struct {
	Activities []ActivityEntry `json:"activities"`
	Count      int             `json:"count"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Pages      int             `json:"pages"`
}

// ExportOutput is the full takeout of a user's stored data.
type ExportOutput struct {
	User        *entity.User              `json:"user_info"`
	Preferences *entity.PreferenceProfile `json:"preferences"`
	ExportedAt  time.Time                 `json:"exported_at"`
}

// DashboardStats are the counters shown on the dashboard.
type DashboardStats struct {
	ViewedLaptops int `json:"viewed_laptops"`
	SavedLaptops  int `json:"saved_laptops"`
}

// DashboardOutput bundles everything the user dashboard shows.
type DashboardOutput struct {
	User        *entity.User              `json:"user"`
	Preferences *entity.PreferenceProfile `json:"preferences"`
	RecentViews []ViewedLaptopDetail      `json:"viewed_laptops"`
	RecentSaves []SavedLaptopDetail       `json:"saved_laptops"`
	Stats       DashboardStats            `json:"stats"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates the user account and provisions its default
	// preference profile in one transaction.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues access/refresh tokens.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetDashboard assembles the user's dashboard view.
	GetDashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)

	// GetActivity pages through the user's merged view/save history.
	GetActivity(ctx context.Context, userID uuid.UUID, input ActivityInput) (*ActivityOutput, error)

	// ExportData collects everything stored about the user for download.
	ExportData(ctx context.Context, userID uuid.UUID) (*ExportOutput, error)

	// DeleteAccount removes the account and all dependent data.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
