package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/domain/repository"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// SignupInput is the payload accepted at registration.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     model.Role
}

// Register creates a new account and returns it with an auth token.
// Admin accounts are seeded out of band, never self-assigned at signup.
func (u *AuthUseCase) Register(ctx context.Context, input SignupInput) (*model.User, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Email == "" {
		return nil, "", domainErrors.ErrInvalidEmail
	}
	if err := ValidateName(input.Name); err != nil {
		return nil, "", err
	}
	if err := ValidateAddress(input.Address); err != nil {
		return nil, "", err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, "", err
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleOwner {
		return nil, "", domainErrors.ErrInvalidRole
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Address:      input.Address,
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a
// fresh token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the identity claim from a bearer credential.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Profile fetches an account by identifier.
func (u *AuthUseCase) Profile(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile applies optional profile changes. A password change is
// validated against the policy and hashed before any write occurs.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if err := ValidateName(trimmed); err != nil {
			return nil, err
		}
		update.Name = &trimmed
	}
	if update.Address != nil {
		if err := ValidateAddress(*update.Address); err != nil {
			return nil, err
		}
	}

	var passwordHash *string
	if update.Password != nil {
		if err := ValidatePassword(*update.Password); err != nil {
			return nil, err
		}
		hash, err := u.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	return u.users.Update(ctx, userID, update, passwordHash)
}
