package model

import "time"

// Role classifies what a registered account may do. The set is closed:
// tokens carrying anything else are rejected at verification time.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// ParseRole maps a raw string onto the closed role set.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleOwner, RoleUser:
		return Role(raw), true
	}
	return "", false
}

// User represents a registered account of the directory.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the subset of user fields safe to expose in responses
// and joins. The password hash never leaves storage through it.
type PublicUser struct {
	ID      int64
	Name    string
	Email   string
	Address string
	Role    Role
}

// Public strips credentials from a full user record.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Address: u.Address, Role: u.Role}
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string
	Role   Role
}

// UserUpdate carries optional profile changes. Nil fields stay untouched.
type UserUpdate struct {
	Name     *string
	Address  *string
	Password *string
}
