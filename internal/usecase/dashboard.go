package usecase

import (
	"context"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/domain/repository"
)

// DashboardUseCase builds the admin overview and the owner dashboard,
// and carries the remaining admin-only account operations.
type DashboardUseCase struct {
	users   repository.UserRepository
	stores  repository.StoreRepository
	ratings repository.RatingRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(users repository.UserRepository, stores repository.StoreRepository, ratings repository.RatingRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, stores: stores, ratings: ratings}
}

// Admin assembles the admin dashboard: filtered users, all stores with
// owner identity, and global counters.
func (u *DashboardUseCase) Admin(ctx context.Context, filter model.UserFilter) (*model.AdminDashboard, error) {
	users, err := u.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stores, err := u.stores.List(ctx, model.StoreFilter{})
	if err != nil {
		return nil, err
	}

	totalUsers, err := u.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStores, err := u.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := u.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AdminDashboard{
		Users:        users,
		Stores:       stores,
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// OwnerStores builds the owner dashboard. Scoping happens in the store
// query itself: only rows with the caller's owner id are ever fetched,
// so a foreign store cannot appear regardless of its ratings.
func (u *DashboardUseCase) OwnerStores(ctx context.Context, ownerID int64) ([]model.OwnerStoreView, error) {
	stores, err := u.stores.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}
	aggregates, err := u.ratings.AggregatesForStores(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]model.OwnerStoreView, 0, len(stores))
	for _, s := range stores {
		view := model.OwnerStoreView{Store: s}
		if agg, ok := aggregates[s.ID]; ok {
			view.AverageRating = roundAverage(agg.Average)
		}
		if view.Ratings, err = u.ratings.ListByStore(ctx, s.ID); err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

// ListUsers returns accounts matching the admin filter, hashes excluded.
func (u *DashboardUseCase) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error) {
	return u.users.List(ctx, filter)
}

// DeleteUser removes an account. Deletion is rejected while the account
// still owns stores; the account's own ratings are removed with it.
func (u *DashboardUseCase) DeleteUser(ctx context.Context, id int64) error {
	owned, err := u.stores.CountByOwner(ctx, id)
	if err != nil {
		return err
	}
	if owned > 0 {
		return domainErrors.ErrOwnedStoresExist
	}
	return u.users.Delete(ctx, id)
}
