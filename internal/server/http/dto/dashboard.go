package dto

import "github.com/ratedir/ratedir/internal/domain/model"

// AdminStoreResponse pairs a store with its owner identity.
type AdminStoreResponse struct {
	StoreResponse
	Owner OwnerResponse `json:"owner"`
}

// AdminDashboardResponse is the admin overview.
type AdminDashboardResponse struct {
	Users        []UserResponse       `json:"users"`
	Stores       []AdminStoreResponse `json:"stores"`
	TotalUsers   int64                `json:"totalUsers"`
	TotalStores  int64                `json:"totalStores"`
	TotalRatings int64                `json:"totalRatings"`
}

// FromAdminDashboard converts the composed admin overview.
func FromAdminDashboard(d *model.AdminDashboard) AdminDashboardResponse {
	users := make([]UserResponse, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, FromPublicUser(u))
	}
	stores := make([]AdminStoreResponse, 0, len(d.Stores))
	for _, s := range d.Stores {
		stores = append(stores, AdminStoreResponse{
			StoreResponse: FromStore(&s.Store),
			Owner:         OwnerResponse{ID: s.Owner.ID, Name: s.Owner.Name, Email: s.Owner.Email},
		})
	}
	return AdminDashboardResponse{
		Users:        users,
		Stores:       stores,
		TotalUsers:   d.TotalUsers,
		TotalStores:  d.TotalStores,
		TotalRatings: d.TotalRatings,
	}
}

// OwnerStoreResponse is one entry of the owner dashboard.
type OwnerStoreResponse struct {
	StoreResponse
	AverageRating *float64              `json:"averageRating"`
	Ratings       []StoreRatingResponse `json:"ratings"`
}

// FromOwnerStoreView converts an owner dashboard entry.
func FromOwnerStoreView(v model.OwnerStoreView) OwnerStoreResponse {
	ratings := make([]StoreRatingResponse, 0, len(v.Ratings))
	for _, r := range v.Ratings {
		ratings = append(ratings, FromRatingWithRater(r))
	}
	return OwnerStoreResponse{
		StoreResponse: FromStore(&v.Store),
		AverageRating: v.AverageRating,
		Ratings:       ratings,
	}
}
