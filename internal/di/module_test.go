package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/ratedir/ratedir/internal/app"
	"github.com/ratedir/ratedir/internal/config"
	"github.com/ratedir/ratedir/internal/domain/repository"
	"github.com/ratedir/ratedir/internal/storage/postgres"
	"github.com/ratedir/ratedir/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	storeRepo := test.NewStoreRepositoryStub()
	ratingRepo := test.NewRatingRepositoryStub()

	var facade *app.DirectoryFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.StoreRepository(storeRepo)),
			fx.Replace(repository.RatingRepository(ratingRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected directory facade instance")
	}
}
