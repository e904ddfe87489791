package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	testhelpers "github.com/ratedir/ratedir/internal/test"
	"github.com/ratedir/ratedir/internal/usecase"
)

func newDashboardFixture(t *testing.T) (*usecase.DashboardUseCase, *testhelpers.UserRepositoryStub, *testhelpers.StoreRepositoryStub, *testhelpers.RatingRepositoryStub) {
	t.Helper()
	users := testhelpers.NewUserRepositoryStub()
	stores := testhelpers.NewStoreRepositoryStub()
	ratings := testhelpers.NewRatingRepositoryStub()
	return usecase.NewDashboardUseCase(users, stores, ratings), users, stores, ratings
}

func TestOwnerStoresScoping(t *testing.T) {
	uc, _, stores, ratings := newDashboardFixture(t)
	ctx := context.Background()

	mine, err := stores.Create(ctx, &model.Store{Name: "Corner Grocery", OwnerID: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	foreign, err := stores.Create(ctx, &model.Store{Name: "Harbor Books", OwnerID: 2})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// The foreign store is heavily rated; it must still never appear.
	if _, _, err := ratings.Upsert(ctx, 5, foreign.ID, 5); err != nil {
		t.Fatalf("seed rating: %v", err)
	}
	if _, _, err := ratings.Upsert(ctx, 6, mine.ID, 3); err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	views, err := uc.OwnerStores(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected exactly the caller's store, got %d entries", len(views))
	}
	if views[0].Store.ID != mine.ID {
		t.Fatalf("unexpected store in owner view: %d", views[0].Store.ID)
	}
	if views[0].AverageRating == nil || *views[0].AverageRating != 3 {
		t.Fatalf("unexpected average: %v", views[0].AverageRating)
	}
	if len(views[0].Ratings) != 1 {
		t.Fatalf("expected 1 rating, got %d", len(views[0].Ratings))
	}
}

func TestOwnerStoresEmpty(t *testing.T) {
	uc, _, _, _ := newDashboardFixture(t)

	views, err := uc.OwnerStores(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty view, got %d", len(views))
	}
}

func TestAdminDashboard(t *testing.T) {
	uc, users, stores, ratings := newDashboardFixture(t)
	ctx := context.Background()

	seed := []*model.User{
		{Name: "Administrative Service Account", Email: "admin@example.com", Role: model.RoleAdmin},
		{Name: "Benjamin Oliver Fairbanks", Email: "ben@example.com", Role: model.RoleOwner},
		{Name: "Alexandra Montgomery Hale", Email: "alex@example.com", Role: model.RoleUser},
	}
	var owner *model.User
	for _, u := range seed {
		created, err := users.Create(ctx, u)
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		if created.Role == model.RoleOwner {
			owner = created
		}
	}
	store, err := stores.Create(ctx, &model.Store{Name: "Corner Grocery", OwnerID: owner.ID})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if _, _, err := ratings.Upsert(ctx, 3, store.ID, 4); err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	t.Run("unfiltered", func(t *testing.T) {
		dash, err := uc.Admin(ctx, model.UserFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dash.TotalUsers != 3 || dash.TotalStores != 1 || dash.TotalRatings != 1 {
			t.Fatalf("unexpected counters: %+v", dash)
		}
		if len(dash.Users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(dash.Users))
		}
		if len(dash.Stores) != 1 {
			t.Fatalf("expected 1 store, got %d", len(dash.Stores))
		}
	})

	t.Run("role filter", func(t *testing.T) {
		dash, err := uc.Admin(ctx, model.UserFilter{Role: model.RoleOwner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dash.Users) != 1 || dash.Users[0].Role != model.RoleOwner {
			t.Fatalf("unexpected filtered users: %+v", dash.Users)
		}
		// Counters stay global regardless of the user filter.
		if dash.TotalUsers != 3 {
			t.Fatalf("unexpected total users: %d", dash.TotalUsers)
		}
	})

	t.Run("search filter", func(t *testing.T) {
		dash, err := uc.Admin(ctx, model.UserFilter{Search: "alex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dash.Users) != 1 || dash.Users[0].Email != "alex@example.com" {
			t.Fatalf("unexpected search result: %+v", dash.Users)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	uc, users, stores, _ := newDashboardFixture(t)
	ctx := context.Background()

	owner, err := users.Create(ctx, &model.User{Name: "Benjamin Oliver Fairbanks", Email: "ben@example.com", Role: model.RoleOwner})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	plain, err := users.Create(ctx, &model.User{Name: "Alexandra Montgomery Hale", Email: "alex@example.com", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := stores.Create(ctx, &model.Store{Name: "Corner Grocery", OwnerID: owner.ID}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	t.Run("rejected while stores are owned", func(t *testing.T) {
		if err := uc.DeleteUser(ctx, owner.ID); !errors.Is(err, domainErrors.ErrOwnedStoresExist) {
			t.Fatalf("expected ErrOwnedStoresExist, got %v", err)
		}
		if _, err := users.GetByID(ctx, owner.ID); err != nil {
			t.Fatal("owner must survive rejected deletion")
		}
	})

	t.Run("plain user removed", func(t *testing.T) {
		if err := uc.DeleteUser(ctx, plain.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := users.GetByID(ctx, plain.ID); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatal("user must be gone after deletion")
		}
	})

	t.Run("missing user", func(t *testing.T) {
		if err := uc.DeleteUser(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListUsers(t *testing.T) {
	uc, users, _, _ := newDashboardFixture(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, &model.User{Name: "Alexandra Montgomery Hale", Email: "alex@example.com", PasswordHash: "secret", Role: model.RoleUser}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	list, err := uc.ListUsers(ctx, model.UserFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}
}
