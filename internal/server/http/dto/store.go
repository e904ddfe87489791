package dto

import (
	"time"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// StoreRequest describes store creation payload.
type StoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// StoreUpdateRequest carries optional store changes.
type StoreUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// OwnerResponse is the owner identity attached to directory rows.
type OwnerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreResponse renders a bare store record.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromStore converts a store record.
func FromStore(s *model.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// StoreSummaryResponse is one directory row. AverageRating is null
// while the store has no ratings. UserRating appears only when the
// requester has rated the store.
type StoreSummaryResponse struct {
	StoreResponse
	Owner         OwnerResponse `json:"owner"`
	AverageRating *float64      `json:"averageRating"`
	RatingCount   int           `json:"ratingCount"`
	UserRating    *int          `json:"userRating,omitempty"`
}

// FromStoreSummary converts a composed directory row.
func FromStoreSummary(s model.StoreSummary) StoreSummaryResponse {
	return StoreSummaryResponse{
		StoreResponse: FromStore(&s.Store),
		Owner:         OwnerResponse{ID: s.Owner.ID, Name: s.Owner.Name, Email: s.Owner.Email},
		AverageRating: s.AverageRating,
		RatingCount:   s.RatingCount,
		UserRating:    s.RequesterRating,
	}
}

// StoreDetailsResponse is a single store page with its ratings.
type StoreDetailsResponse struct {
	StoreResponse
	Owner         OwnerResponse         `json:"owner"`
	AverageRating *float64              `json:"averageRating"`
	Ratings       []StoreRatingResponse `json:"ratings"`
}

// FromStoreDetails converts store details with the full rating list.
func FromStoreDetails(d *model.StoreDetails) StoreDetailsResponse {
	ratings := make([]StoreRatingResponse, 0, len(d.Ratings))
	for _, r := range d.Ratings {
		ratings = append(ratings, FromRatingWithRater(r))
	}
	return StoreDetailsResponse{
		StoreResponse: FromStore(&d.Store),
		Owner:         OwnerResponse{ID: d.Owner.ID, Name: d.Owner.Name, Email: d.Owner.Email},
		AverageRating: d.AverageRating,
		Ratings:       ratings,
	}
}
