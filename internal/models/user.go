package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a league account. A player account is linked to one player by name.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	PlayerName   string    `json:"player_name,omitempty" db:"player_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserRole represents available user roles
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RolePlayer     UserRole = "player"
)

// IsSuperAdmin returns true if user manages the whole league
func (u *User) IsSuperAdmin() bool {
	return u.Role == string(RoleSuperAdmin)
}

// IsPlayer returns true if user has the player role
func (u *User) IsPlayer() bool {
	return u.Role == string(RolePlayer)
}
