package model

import "github.com/google/uuid"

// Role classifies a marketplace account.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// UserProfile represents a marketplace account profile.
type UserProfile struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Email    string    `json:"email" db:"email"`
	FullName string    `json:"fullName" db:"full_name"`
	Phone    string    `json:"phone" db:"phone"`
	Role     Role      `json:"role" db:"role"`
}
