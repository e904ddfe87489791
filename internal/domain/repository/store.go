package repository

import (
	"context"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// StoreRepository describes persistence operations for stores.
//
// Update and Delete are scoped by owner in the query itself: a store that
// exists but belongs to someone else behaves exactly like a missing one.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) (*model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.StoreWithOwner, error)
	List(ctx context.Context, filter model.StoreFilter) ([]model.StoreWithOwner, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Store, error)
	Update(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error)
	Delete(ctx context.Context, id, ownerID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
