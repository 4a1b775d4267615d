// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes regular shoppers from catalog administrators.
type Role string

// Known roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the core account entity. UsageType is a coarse, opaque tag
// ("gaming", "student", ...) used only to group users for collaborative
// recommendations; the recommendation core never interprets it.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	UsageType    string    `json:"usage_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may perform catalog mutations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
