package model

import "time"

const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

// Roles lists every assignable role.
var Roles = []string{RoleUser, RoleManager, RoleAdmin}

// IsValidRole reports whether role is one of Roles.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account record owned by the account directory.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the safe projection of a User; it never carries the password hash.
type UserSummary struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// Summary returns the safe projection of u.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
