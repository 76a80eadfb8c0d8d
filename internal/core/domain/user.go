package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Admin is an operator account stored in the directory.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the part of an admin record a session carries around and persists.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Identity returns the session view of the admin.
func (a *Admin) Identity() Identity {
	return Identity{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
		IsActive: a.IsActive,
	}
}

// ValidRole reports whether role is one the directory accepts.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
