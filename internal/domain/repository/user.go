package repository

import (
	"context"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, update model.UserUpdate, passwordHash *string) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
