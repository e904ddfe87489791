package di

import (
	"go.uber.org/fx"

	"github.com/ratedir/ratedir/internal/app"
	"github.com/ratedir/ratedir/internal/config"
	"github.com/ratedir/ratedir/internal/logger"
	"github.com/ratedir/ratedir/internal/pkg/auth"
	"github.com/ratedir/ratedir/internal/server/http/handlers"
	"github.com/ratedir/ratedir/internal/server/http/router"
	"github.com/ratedir/ratedir/internal/storage/postgres"
	"github.com/ratedir/ratedir/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.DirectoryFacade) handlers.DirectoryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
