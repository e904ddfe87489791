package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidName        = errors.New("name must be 20-60 characters")
	ErrInvalidAddress     = errors.New("address must be at most 400 characters")
	ErrInvalidEmail       = errors.New("email is required")
	ErrPasswordLength     = errors.New("password must be 8-16 characters")
	ErrPasswordUppercase  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordSpecial    = errors.New("password must contain at least one special character (!@#$%^&*)")
	ErrOwnedStoresExist   = errors.New("user still owns stores")
	ErrUnavailable        = errors.New("storage temporarily unavailable")
)
