package model

import "time"

// Rating value bounds. Submissions outside the range never reach storage.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is one user's score for one store. The (UserID, StoreID) pair
// is unique; resubmission overwrites Value in place.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RatingWithRater joins a rating with the submitting user's public identity.
type RatingWithRater struct {
	Rating
	RaterName  string
	RaterEmail string
}

// RatingWithStore joins a rating with the rated store's name and address.
type RatingWithStore struct {
	Rating
	StoreName    string
	StoreAddress string
}

// StoreAggregate is the derived, never-persisted per-store mean.
// Average is nil iff Count is zero.
type StoreAggregate struct {
	Average *float64
	Count   int
}
