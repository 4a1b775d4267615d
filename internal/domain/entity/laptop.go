// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the closed set of laptop manufacturers carried by the catalog.
type Brand string

// Known brands. Filter values outside this set are not rejected; they
// simply match no catalog rows.
const (
	BrandApple   Brand = "apple"
	BrandDell    Brand = "dell"
	BrandHP      Brand = "hp"
	BrandLenovo  Brand = "lenovo"
	BrandAsus    Brand = "asus"
	BrandAcer    Brand = "acer"
	BrandMSI     Brand = "msi"
	BrandRazer   Brand = "razer"
	BrandSamsung Brand = "samsung"
	BrandOther   Brand = "other"
)

// Category is the closed set of catalog segments.
type Category string

// Known categories.
const (
	CategoryUltrabook   Category = "ultrabook"
	CategoryGaming      Category = "gaming"
	CategoryWorkstation Category = "workstation"
	CategoryBudget      Category = "budget"
	CategoryConvertible Category = "convertible"
	CategoryBusiness    Category = "business"
)

// Price holds the current and original price of a catalog item.
// Invariant: Original >= Current.
type Price struct {
	Current  float64 `json:"current"`
	Original float64 `json:"original"`
	Currency string  `json:"currency"`
}

// Specifications holds the hardware spec sheet of a laptop.
type Specifications struct {
	RAM         int     `json:"ram"`     // GB
	Storage     string  `json:"storage"` // free-text label, e.g. "512GB SSD"
	Processor   string  `json:"processor"`
	GPU         string  `json:"gpu"`
	DisplaySize float64 `json:"display_size"` // inches
	Resolution  string  `json:"resolution"`
	RefreshRate int     `json:"refresh_rate"` // Hz; 0 means unspecified
	Weight      float64 `json:"weight"`       // kg
	BatteryLife int     `json:"battery_life"` // hours
}

// Features holds the boolean feature flags of a laptop.
type Features struct {
	Touchscreen        bool `json:"touchscreen"`
	IPS                bool `json:"ips"`
	BacklitKeyboard    bool `json:"backlit_keyboard"`
	FingerprintScanner bool `json:"fingerprint_scanner"`
}

// Rating holds the aggregate review rating of a laptop.
// Invariant: Average is within [0, 5].
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Laptop is a single catalog item. The recommendation engine treats it as
// read-only; mutation happens only through the admin catalog operations.
type Laptop struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Brand          Brand          `json:"brand"`
	Model          string         `json:"model"`
	Category       Category       `json:"category"`
	Price          Price          `json:"price"`
	Specifications Specifications `json:"specifications"`
	Features       Features       `json:"features"`
	Rating         Rating         `json:"rating"`
	Stock          int            `json:"stock"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
