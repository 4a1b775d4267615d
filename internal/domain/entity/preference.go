// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default preference values applied when a profile is provisioned at
// registration time.
const (
	DefaultBudgetMin      = 0.0
	DefaultBudgetMax      = 5000.0
	DefaultImportance     = 5
	DefaultMaxWeight      = 2.5
	DefaultMinDisplaySize = 13.0
	DefaultMinBatteryHrs  = 6
)

// BudgetPreference is the price band the user wants to buy within.
// Invariant: Min <= Max.
type BudgetPreference struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// PerformancePreference captures how much the user cares about raw
// performance, plus the usage tags they selected (gaming, coding, ...).
type PerformancePreference struct {
	Importance int      `json:"importance"` // [1,10]
	UsageTags  []string `json:"usage_tags"`
}

// PortabilityPreference captures the weight ceiling the user is willing
// to carry and how much that matters to them.
type PortabilityPreference struct {
	Importance int     `json:"importance"` // [1,10]
	MaxWeight  float64 `json:"max_weight"` // kg
}

// DisplayPreference captures display requirements.
type DisplayPreference struct {
	Importance      int     `json:"importance"` // [1,10]
	MinSize         float64 `json:"min_size"`   // inches
	Touchscreen     bool    `json:"touchscreen"`
	HighRefreshRate bool    `json:"high_refresh_rate"`
}

// BatteryPreference captures battery-life requirements.
type BatteryPreference struct {
	Importance int `json:"importance"` // [1,10]
	MinHours   int `json:"min_hours"`
}

// ViewedLaptop is one entry of the view log. The profile holds at most one
// entry per laptop; the first view wins and later views of the same laptop
// do not update the rating or timestamp.
type ViewedLaptop struct {
	LaptopID uuid.UUID `json:"laptop_id"`
	ViewedAt time.Time `json:"viewed_at"`
	Rating   *int      `json:"rating,omitempty"` // [1,5] when present
}

// SavedLaptop is one entry of the save log. Saves are discrete actions, so
// the same laptop may appear multiple times with different notes.
type SavedLaptop struct {
	LaptopID uuid.UUID `json:"laptop_id"`
	SavedAt  time.Time `json:"saved_at"`
	Note     string    `json:"note,omitempty"`
}

// PreferenceProfile is a user's stored budget/importance/threshold settings
// plus their interaction logs. Exactly one profile exists per user; it is
// created alongside registration and removed only when the account is.
type PreferenceProfile struct {
	UserID        uuid.UUID             `json:"user_id"`
	Budget        BudgetPreference      `json:"budget"`
	Performance   PerformancePreference `json:"performance"`
	Portability   PortabilityPreference `json:"portability"`
	Display       DisplayPreference     `json:"display"`
	Battery       BatteryPreference     `json:"battery"`
	ViewedLaptops []ViewedLaptop        `json:"viewed_laptops"`
	SavedLaptops  []SavedLaptop         `json:"saved_laptops"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// NewDefaultProfile builds the preference profile provisioned for a freshly
// registered user.
func NewDefaultProfile(userID uuid.UUID) *PreferenceProfile {
	return &PreferenceProfile{
		UserID: userID,
		Budget: BudgetPreference{
			Min:      DefaultBudgetMin,
			Max:      DefaultBudgetMax,
			Currency: "EUR",
		},
		Performance: PerformancePreference{Importance: DefaultImportance},
		Portability: PortabilityPreference{
			Importance: DefaultImportance,
			MaxWeight:  DefaultMaxWeight,
		},
		Display: DisplayPreference{
			Importance: DefaultImportance,
			MinSize:    DefaultMinDisplaySize,
		},
		Battery: BatteryPreference{
			Importance: DefaultImportance,
			MinHours:   DefaultMinBatteryHrs,
		},
	}
}

// HasViewed reports whether the profile's view log already contains the
// given laptop.
func (p *PreferenceProfile) HasViewed(laptopID uuid.UUID) bool {
	for _, viewed := range p.ViewedLaptops {
		if viewed.LaptopID == laptopID {
			return true
		}
	}

	return false
}
