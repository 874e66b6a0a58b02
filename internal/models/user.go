package models

import "time"

// Role represents user roles in the system
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleUser
}

// User represents an account in the system. The password hash is part of the
// persisted record; emails are matched exactly as stored (case-sensitive).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy of the user without the password hash, suitable for
// the session blob and for handing back to callers.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
