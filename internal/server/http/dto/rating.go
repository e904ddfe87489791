package dto

import (
	"time"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// RatingRequest describes a rating submission.
type RatingRequest struct {
	StoreID int64 `json:"storeId"`
	Rating  int   `json:"rating"`
}

// RatingResponse confirms a submission. Message distinguishes a fresh
// rating from an overwrite of an existing one.
type RatingResponse struct {
	Message string `json:"message"`
	StoreID int64  `json:"storeId"`
	Rating  int    `json:"rating"`
}

// StoreRatingResponse is one rating on a store page, with the rater's
// public identity.
type StoreRatingResponse struct {
	ID         int64     `json:"id"`
	Rating     int       `json:"rating"`
	RaterName  string    `json:"raterName"`
	RaterEmail string    `json:"raterEmail"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromRatingWithRater converts a joined rating row.
func FromRatingWithRater(r model.RatingWithRater) StoreRatingResponse {
	return StoreRatingResponse{
		ID:         r.ID,
		Rating:     r.Value,
		RaterName:  r.RaterName,
		RaterEmail: r.RaterEmail,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// UserRatingResponse is one of the caller's own ratings, with the rated
// store's name and address.
type UserRatingResponse struct {
	ID           int64     `json:"id"`
	StoreID      int64     `json:"storeId"`
	StoreName    string    `json:"storeName"`
	StoreAddress string    `json:"storeAddress"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromRatingWithStore converts a joined rating row.
func FromRatingWithStore(r model.RatingWithStore) UserRatingResponse {
	return UserRatingResponse{
		ID:           r.ID,
		StoreID:      r.StoreID,
		StoreName:    r.StoreName,
		StoreAddress: r.StoreAddress,
		Rating:       r.Value,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
