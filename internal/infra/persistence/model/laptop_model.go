// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LaptopModel mirrors the 'laptops' table. The nested entity value objects
// (price, specifications, features, rating) are flattened into columns so
// they stay filterable and sortable in SQL.
type LaptopModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Brand    string    `gorm:"type:varchar(50);not null;index"`
	Model    string    `gorm:"type:varchar(100);not null"`
	Category string    `gorm:"type:varchar(50);index"`

	PriceCurrent  float64 `gorm:"not null;index"`
	PriceOriginal float64
	PriceCurrency string `gorm:"type:varchar(3)"`

	RAM         int    `gorm:"column:ram;index"`
	Storage     string `gorm:"type:varchar(100)"`
	Processor   string `gorm:"type:varchar(100)"`
	GPU         string `gorm:"column:gpu;type:varchar(100)"`
	DisplaySize float64
	Resolution  string `gorm:"type:varchar(50)"`
	RefreshRate int
	Weight      float64
	BatteryLife int

	Touchscreen        bool
	IPS                bool `gorm:"column:ips"`
	BacklitKeyboard    bool
	FingerprintScanner bool

	RatingAverage float64
	RatingCount   int

	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LaptopModel) TableName() string {
	return "laptops"
}
