package model

import "time"

// Role tags a user profile as either a service provider or a buyer.
// The two roles are mutually exclusive.
type Role string

const (
	RoleBusiness Role = "business"
	RoleCustomer Role = "customer"
)

// ValidRole reports whether r is one of the known profile roles.
func ValidRole(r Role) bool {
	return r == RoleBusiness || r == RoleCustomer
}

// User represents a registered account together with its public profile.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsStaff      bool
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	File         string
	CreatedAt    time.Time
}

// FullName joins first and last name for display purposes.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
