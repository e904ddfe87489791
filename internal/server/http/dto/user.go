package dto

import "github.com/ratedir/ratedir/internal/domain/model"

// UserResponse is an account rendered for clients. The password hash
// never appears here.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// FromUser converts a full account record.
func FromUser(u *model.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    string(u.Role),
	}
}

// FromPublicUser converts an already-stripped account record.
func FromPublicUser(u model.PublicUser) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    string(u.Role),
	}
}

// UpdateProfileRequest carries optional profile changes. Absent fields
// stay untouched.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}
