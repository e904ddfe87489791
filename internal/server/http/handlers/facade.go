package handlers

import (
	"context"

	"github.com/ratedir/ratedir/internal/domain/model"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
	"github.com/ratedir/ratedir/internal/usecase"
)

// AuthFacade describes account and token capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, input usecase.SignupInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error)
}

// StoreFacade encapsulates directory and store management operations.
type StoreFacade interface {
	CreateStore(ctx context.Context, ownerID int64, input usecase.StoreInput) (*model.Store, error)
	ListStores(ctx context.Context, filter model.StoreFilter, requester *pkgAuth.Claims) ([]model.StoreSummary, error)
	GetStore(ctx context.Context, id int64) (*model.StoreDetails, error)
	UpdateStore(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error)
	DeleteStore(ctx context.Context, id, ownerID int64) error
}

// RatingFacade provides rating submission and listing.
type RatingFacade interface {
	SubmitRating(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error)
	StoreRatings(ctx context.Context, storeID int64) ([]model.RatingWithRater, error)
	UserRatings(ctx context.Context, userID int64) ([]model.RatingWithStore, error)
}

// DashboardFacade provides admin and owner overviews plus admin-only
// account operations.
type DashboardFacade interface {
	AdminDashboard(ctx context.Context, filter model.UserFilter) (*model.AdminDashboard, error)
	OwnerDashboard(ctx context.Context, ownerID int64) ([]model.OwnerStoreView, error)
	ListUsers(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error)
	DeleteUser(ctx context.Context, id int64) error
}

// HealthFacade reports backend readiness.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// DirectoryFacade aggregates the full set of operations used across handlers.
type DirectoryFacade interface {
	AuthFacade
	StoreFacade
	RatingFacade
	DashboardFacade
	HealthFacade
}
