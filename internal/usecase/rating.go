package usecase

import (
	"context"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/domain/repository"
)

// RatingUseCase encapsulates rating submission and projections.
type RatingUseCase struct {
	ratings repository.RatingRepository
}

// NewRatingUseCase constructs RatingUseCase.
func NewRatingUseCase(ratings repository.RatingRepository) *RatingUseCase {
	return &RatingUseCase{ratings: ratings}
}

// Submit records the caller's rating for a store. A resubmission for
// the same store overwrites the previous value in place; the bool
// reports whether the rating was newly added. A reference to a missing
// store surfaces as ErrNotFound from the ledger itself.
func (u *RatingUseCase) Submit(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error) {
	if value < model.RatingMin || value > model.RatingMax {
		return nil, false, domainErrors.ErrInvalidRating
	}
	return u.ratings.Upsert(ctx, userID, storeID, value)
}

// ListByStore returns every rating for a store with rater identity.
func (u *RatingUseCase) ListByStore(ctx context.Context, storeID int64) ([]model.RatingWithRater, error) {
	return u.ratings.ListByStore(ctx, storeID)
}

// ListByUser returns the user's own ratings with store info.
func (u *RatingUseCase) ListByUser(ctx context.Context, userID int64) ([]model.RatingWithStore, error) {
	return u.ratings.ListByUser(ctx, userID)
}
