package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           string
	Name         string
	Email        string // normalized, see NormalizeEmail
	PasswordHash string `json:"-"` // argon2 encoded
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity projects the user onto the requester identity used for
// authorization decisions.
func (u User) Identity() *Identity {
	return &Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Summary is the owner block embedded in post responses.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is the public projection of a post's owner.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

// NormalizeEmail trims and lower-cases an email so that case and whitespace
// variants compare equal.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ProfileUpdate carries the optional fields of a profile change. Nil means
// the field was not supplied.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// Registration is the input to sign-up.
type Registration struct {
	Name     string
	Email    string
	Password string
}
