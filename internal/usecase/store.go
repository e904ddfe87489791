package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/domain/repository"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
)

// StoreUseCase encapsulates store lifecycle and the public directory.
type StoreUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
}

// NewStoreUseCase constructs StoreUseCase.
func NewStoreUseCase(stores repository.StoreRepository, ratings repository.RatingRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, ratings: ratings}
}

// StoreInput is the payload for store creation.
type StoreInput struct {
	Name    string
	Email   string
	Address string
}

// Create registers a store owned by the caller.
func (u *StoreUseCase) Create(ctx context.Context, ownerID int64, input StoreInput) (*model.Store, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, domainErrors.ErrInvalidName
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainErrors.ErrInvalidEmail
	}
	if input.Address == "" {
		return nil, domainErrors.ErrInvalidAddress
	}
	if err := ValidateAddress(input.Address); err != nil {
		return nil, err
	}

	return u.stores.Create(ctx, &model.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: ownerID,
	})
}

// List composes the public directory: stores matching the filter, each
// with owner identity and the on-demand aggregate. When the requester
// is an authenticated ordinary user their own rating is overlaid.
func (u *StoreUseCase) List(ctx context.Context, filter model.StoreFilter, requester *pkgAuth.Claims) ([]model.StoreSummary, error) {
	stores, err := u.stores.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.Store.ID)
	}

	aggregates, err := u.ratings.AggregatesForStores(ctx, ids)
	if err != nil {
		return nil, err
	}

	var ownRatings map[int64]int
	if requester != nil && requester.Role == model.RoleUser {
		if ownRatings, err = u.ratings.ValuesByUser(ctx, requester.UserID); err != nil {
			return nil, err
		}
	}

	result := make([]model.StoreSummary, 0, len(stores))
	for _, s := range stores {
		summary := model.StoreSummary{Store: s.Store, Owner: s.Owner}
		if agg, ok := aggregates[s.Store.ID]; ok {
			summary.AverageRating = roundAverage(agg.Average)
			summary.RatingCount = agg.Count
		}
		if ownRatings != nil {
			if value, ok := ownRatings[s.Store.ID]; ok {
				v := value
				summary.RequesterRating = &v
			}
		}
		result = append(result, summary)
	}
	return result, nil
}

// Get returns a single store with its ratings and aggregate.
func (u *StoreUseCase) Get(ctx context.Context, id int64) (*model.StoreDetails, error) {
	store, err := u.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, err := u.ratings.ListByStore(ctx, id)
	if err != nil {
		return nil, err
	}

	agg, err := u.ratings.AggregateForStore(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.StoreDetails{
		Store:         store.Store,
		Owner:         store.Owner,
		AverageRating: roundAverage(agg.Average),
		Ratings:       ratings,
	}, nil
}

// Update modifies a store the caller owns. A store owned by someone
// else reports ErrNotFound, never a permission error.
func (u *StoreUseCase) Update(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domainErrors.ErrInvalidName
	}
	if update.Address != nil {
		if err := ValidateAddress(*update.Address); err != nil {
			return nil, err
		}
	}
	return u.stores.Update(ctx, id, ownerID, update)
}

// Delete removes a store the caller owns.
func (u *StoreUseCase) Delete(ctx context.Context, id, ownerID int64) error {
	return u.stores.Delete(ctx, id, ownerID)
}
