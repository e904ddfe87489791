package model

import "time"

// Store is a rateable venue owned by exactly one owner account.
type Store struct {
	ID        int64
	Name      string
	Email     string
	Address   string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerInfo is the owner identity attached to directory listings.
type OwnerInfo struct {
	ID    int64
	Name  string
	Email string
}

// StoreFilter holds optional case-insensitive substring filters and
// an optional sort key for directory listings.
type StoreFilter struct {
	Name    string
	Address string
	SortBy  StoreSort
}

// StoreSort enumerates caller-selectable orderings. The zero value keeps
// creation order.
type StoreSort string

const (
	StoreSortCreated StoreSort = ""
	StoreSortName    StoreSort = "name"
	StoreSortAddress StoreSort = "address"
)

// StoreUpdate carries mutable store fields. Nil fields stay untouched.
type StoreUpdate struct {
	Name    *string
	Email   *string
	Address *string
}

// StoreSummary is a directory row: store, owner identity and derived
// aggregate. AverageRating is nil while the store has no ratings, which
// renders as "no ratings yet" rather than zero. RequesterRating is only
// populated for authenticated requesters with the user role.
type StoreSummary struct {
	Store           Store
	Owner           OwnerInfo
	AverageRating   *float64
	RatingCount     int
	RequesterRating *int
}

// StoreDetails is a single store page: the summary plus every rating
// with the rater's public identity.
type StoreDetails struct {
	Store         Store
	Owner         OwnerInfo
	AverageRating *float64
	Ratings       []RatingWithRater
}

// OwnerStoreView is one entry of the owner dashboard.
type OwnerStoreView struct {
	Store         Store
	AverageRating *float64
	Ratings       []RatingWithRater
}
