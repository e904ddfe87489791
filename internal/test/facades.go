package test

import (
	"context"
	"time"

	"github.com/ratedir/ratedir/internal/domain/model"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
	"github.com/ratedir/ratedir/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	SignupFn        func(context.Context, usecase.SignupInput) (*model.User, string, error)
	LoginFn         func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (*pkgAuth.Claims, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, model.UserUpdate) (*model.User, error)
}

// Signup returns a created account for successful registration scenarios.
func (s AuthFacadeStub) Signup(ctx context.Context, input usecase.SignupInput) (*model.User, string, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, input)
	}
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	return &model.User{ID: 1, Name: input.Name, Email: input.Email, Role: role}, "token", nil
}

// Login returns an account with token for successful authentication.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// ParseToken returns stored identity for authenticated requests.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: 1, Role: model.RoleUser}, nil
}

// Profile returns the stored account.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Role: model.RoleUser}, nil
}

// UpdateProfile applies the update in stub form.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, update)
	}
	return &model.User{ID: userID, Role: model.RoleUser}, nil
}

// StoreFacadeStub provides controllable behaviour for store endpoints.
type StoreFacadeStub struct {
	CreateFn func(context.Context, int64, usecase.StoreInput) (*model.Store, error)
	ListFn   func(context.Context, model.StoreFilter, *pkgAuth.Claims) ([]model.StoreSummary, error)
	GetFn    func(context.Context, int64) (*model.StoreDetails, error)
	UpdateFn func(context.Context, int64, int64, model.StoreUpdate) (*model.Store, error)
	DeleteFn func(context.Context, int64, int64) error
}

// CreateStore delegates to the override or returns a default store.
func (s StoreFacadeStub) CreateStore(ctx context.Context, ownerID int64, input usecase.StoreInput) (*model.Store, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ownerID, input)
	}
	return &model.Store{ID: 1, Name: input.Name, Email: input.Email, Address: input.Address, OwnerID: ownerID}, nil
}

// ListStores returns predefined directory rows.
func (s StoreFacadeStub) ListStores(ctx context.Context, filter model.StoreFilter, requester *pkgAuth.Claims) ([]model.StoreSummary, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, requester)
	}
	return []model.StoreSummary{{Store: model.Store{ID: 1, Name: "Corner Grocery"}}}, nil
}

// GetStore returns predefined store details.
func (s StoreFacadeStub) GetStore(ctx context.Context, id int64) (*model.StoreDetails, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.StoreDetails{Store: model.Store{ID: id, Name: "Corner Grocery"}}, nil
}

// UpdateStore delegates to the override or echoes the update.
func (s StoreFacadeStub) UpdateStore(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, ownerID, update)
	}
	return &model.Store{ID: id, OwnerID: ownerID}, nil
}

// DeleteStore delegates to the override.
func (s StoreFacadeStub) DeleteStore(ctx context.Context, id, ownerID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, ownerID)
	}
	return nil
}

// RatingFacadeStub simulates rating operations.
type RatingFacadeStub struct {
	SubmitFn       func(context.Context, int64, int64, int) (*model.Rating, bool, error)
	StoreRatingsFn func(context.Context, int64) ([]model.RatingWithRater, error)
	UserRatingsFn  func(context.Context, int64) ([]model.RatingWithStore, error)
}

// SubmitRating delegates to the override or reports a fresh rating.
func (s RatingFacadeStub) SubmitRating(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, storeID, value)
	}
	return &model.Rating{ID: 1, UserID: userID, StoreID: storeID, Value: value}, true, nil
}

// StoreRatings returns preconfigured ratings for a store.
func (s RatingFacadeStub) StoreRatings(ctx context.Context, storeID int64) ([]model.RatingWithRater, error) {
	if s.StoreRatingsFn != nil {
		return s.StoreRatingsFn(ctx, storeID)
	}
	return []model.RatingWithRater{{Rating: model.Rating{ID: 1, StoreID: storeID, Value: 5, CreatedAt: time.Unix(0, 0)}}}, nil
}

// UserRatings returns preconfigured ratings for a user.
func (s RatingFacadeStub) UserRatings(ctx context.Context, userID int64) ([]model.RatingWithStore, error) {
	if s.UserRatingsFn != nil {
		return s.UserRatingsFn(ctx, userID)
	}
	return []model.RatingWithStore{{Rating: model.Rating{ID: 1, UserID: userID, Value: 4}}}, nil
}

// DashboardFacadeStub simulates dashboard and admin account operations.
type DashboardFacadeStub struct {
	AdminFn      func(context.Context, model.UserFilter) (*model.AdminDashboard, error)
	OwnerFn      func(context.Context, int64) ([]model.OwnerStoreView, error)
	ListUsersFn  func(context.Context, model.UserFilter) ([]model.PublicUser, error)
	DeleteUserFn func(context.Context, int64) error
}

// AdminDashboard returns the configured overview.
func (s DashboardFacadeStub) AdminDashboard(ctx context.Context, filter model.UserFilter) (*model.AdminDashboard, error) {
	if s.AdminFn != nil {
		return s.AdminFn(ctx, filter)
	}
	return &model.AdminDashboard{TotalUsers: 1}, nil
}

// OwnerDashboard returns the configured owner view.
func (s DashboardFacadeStub) OwnerDashboard(ctx context.Context, ownerID int64) ([]model.OwnerStoreView, error) {
	if s.OwnerFn != nil {
		return s.OwnerFn(ctx, ownerID)
	}
	return []model.OwnerStoreView{{Store: model.Store{ID: 1, OwnerID: ownerID}}}, nil
}

// ListUsers returns the configured account list.
func (s DashboardFacadeStub) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error) {
	if s.ListUsersFn != nil {
		return s.ListUsersFn(ctx, filter)
	}
	return []model.PublicUser{{ID: 1, Role: model.RoleUser}}, nil
}

// DeleteUser delegates to the override.
func (s DashboardFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configured readiness.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured probe result.
func (s HealthFacadeStub) Health(ctx context.Context) error {
	return s.Err
}

// DirectoryFacadeStub aggregates facade dependencies for HTTP layer tests.
type DirectoryFacadeStub struct {
	AuthFacadeStub
	StoreFacadeStub
	RatingFacadeStub
	DashboardFacadeStub
	HealthFacadeStub
}
