package repository

import (
	"context"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// RatingRepository owns the one-rating-per-(user,store) invariant.
type RatingRepository interface {
	// Upsert atomically creates or overwrites the rating keyed by
	// (userID, storeID). The bool reports whether a new row was created.
	Upsert(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error)
	GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.RatingWithRater, error)
	ListByUser(ctx context.Context, userID int64) ([]model.RatingWithStore, error)
	// AggregateForStore recomputes the mean and count from live rows.
	AggregateForStore(ctx context.Context, storeID int64) (model.StoreAggregate, error)
	// AggregatesForStores is the grouped variant used by listings to
	// avoid issuing one aggregate query per store.
	AggregatesForStores(ctx context.Context, storeIDs []int64) (map[int64]model.StoreAggregate, error)
	// ValuesByUser returns the user's ratings keyed by store for the
	// directory overlay.
	ValuesByUser(ctx context.Context, userID int64) (map[int64]int, error)
	Count(ctx context.Context) (int64, error)
}
