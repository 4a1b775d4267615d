package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferenceModel mirrors the 'user_preferences' table. One row per user,
// provisioned together with the account. Usage tags are stored as a JSONB
// array because they are never filtered in SQL.
type UserPreferenceModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`

	BudgetMin      float64
	BudgetMax      float64
	BudgetCurrency string `gorm:"type:varchar(3)"`

	PerformanceImportance int
	UsageTags             []byte `gorm:"type:jsonb"`

	PortabilityImportance int
	MaxWeight             float64

	DisplayImportance int
	MinDisplaySize    float64
	Touchscreen       bool
	HighRefreshRate   bool

	BatteryImportance int
	MinBatteryHours   int

	UpdatedAt time.Time

	ViewedLaptops []ViewedLaptopModel `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
	SavedLaptops  []SavedLaptopModel  `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}

// ViewedLaptopModel mirrors the 'viewed_laptops' table. The unique index on
// (user_id, laptop_id) is what makes view tracking idempotent: conflicting
// inserts are dropped at the database, so the first view always wins.
type ViewedLaptopModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewed_user_laptop"`
	LaptopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewed_user_laptop"`
	ViewedAt time.Time `gorm:"not null"`
	Rating   *int
}

// TableName explicitly sets the table name for GORM.
func (ViewedLaptopModel) TableName() string {
	return "viewed_laptops"
}

// SavedLaptopModel mirrors the 'saved_laptops' table. Append-only: the same
// laptop may be saved repeatedly with different notes.
type SavedLaptopModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LaptopID uuid.UUID `gorm:"type:uuid;not null"`
	SavedAt  time.Time `gorm:"not null"`
	Note     string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SavedLaptopModel) TableName() string {
	return "saved_laptops"
}
