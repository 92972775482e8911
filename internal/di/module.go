package di

import (
	"go.uber.org/fx"

	"github.com/alexh7799/coderr/internal/app"
	"github.com/alexh7799/coderr/internal/config"
	"github.com/alexh7799/coderr/internal/logger"
	"github.com/alexh7799/coderr/internal/pkg/auth"
	"github.com/alexh7799/coderr/internal/server/http/handlers"
	"github.com/alexh7799/coderr/internal/server/http/router"
	"github.com/alexh7799/coderr/internal/storage/postgres"
	"github.com/alexh7799/coderr/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.MarketFacade) handlers.MarketFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
