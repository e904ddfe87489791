package app

import (
	"context"

	"github.com/ratedir/ratedir/internal/domain/model"
	pkgAuth "github.com/ratedir/ratedir/internal/pkg/auth"
	"github.com/ratedir/ratedir/internal/usecase"
)

// HealthChecker reports backend readiness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DirectoryFacade is the single entry point the HTTP layer talks to. It
// fans out to the use cases and carries the readiness probe.
type DirectoryFacade struct {
	auth      *usecase.AuthUseCase
	stores    *usecase.StoreUseCase
	ratings   *usecase.RatingUseCase
	dashboard *usecase.DashboardUseCase
	health    HealthChecker
}

// NewDirectoryFacade constructs DirectoryFacade.
func NewDirectoryFacade(auth *usecase.AuthUseCase, stores *usecase.StoreUseCase, ratings *usecase.RatingUseCase, dashboard *usecase.DashboardUseCase, health HealthChecker) *DirectoryFacade {
	return &DirectoryFacade{auth: auth, stores: stores, ratings: ratings, dashboard: dashboard, health: health}
}

func (f *DirectoryFacade) Signup(ctx context.Context, input usecase.SignupInput) (*model.User, string, error) {
	return f.auth.Register(ctx, input)
}

func (f *DirectoryFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *DirectoryFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *DirectoryFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.Profile(ctx, userID)
}

func (f *DirectoryFacade) UpdateProfile(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, update)
}

func (f *DirectoryFacade) CreateStore(ctx context.Context, ownerID int64, input usecase.StoreInput) (*model.Store, error) {
	return f.stores.Create(ctx, ownerID, input)
}

func (f *DirectoryFacade) ListStores(ctx context.Context, filter model.StoreFilter, requester *pkgAuth.Claims) ([]model.StoreSummary, error) {
	return f.stores.List(ctx, filter, requester)
}

func (f *DirectoryFacade) GetStore(ctx context.Context, id int64) (*model.StoreDetails, error) {
	return f.stores.Get(ctx, id)
}

func (f *DirectoryFacade) UpdateStore(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error) {
	return f.stores.Update(ctx, id, ownerID, update)
}

func (f *DirectoryFacade) DeleteStore(ctx context.Context, id, ownerID int64) error {
	return f.stores.Delete(ctx, id, ownerID)
}

func (f *DirectoryFacade) SubmitRating(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error) {
	return f.ratings.Submit(ctx, userID, storeID, value)
}

func (f *DirectoryFacade) StoreRatings(ctx context.Context, storeID int64) ([]model.RatingWithRater, error) {
	return f.ratings.ListByStore(ctx, storeID)
}

func (f *DirectoryFacade) UserRatings(ctx context.Context, userID int64) ([]model.RatingWithStore, error) {
	return f.ratings.ListByUser(ctx, userID)
}

func (f *DirectoryFacade) AdminDashboard(ctx context.Context, filter model.UserFilter) (*model.AdminDashboard, error) {
	return f.dashboard.Admin(ctx, filter)
}

func (f *DirectoryFacade) OwnerDashboard(ctx context.Context, ownerID int64) ([]model.OwnerStoreView, error) {
	return f.dashboard.OwnerStores(ctx, ownerID)
}

func (f *DirectoryFacade) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error) {
	return f.dashboard.ListUsers(ctx, filter)
}

func (f *DirectoryFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.dashboard.DeleteUser(ctx, id)
}

func (f *DirectoryFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
