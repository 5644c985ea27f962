//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/infras/otel"
	dishService "github.com/chenawi66/chefhu-2026/internal/domains/dish/service"
	scheduleRepository "github.com/chenawi66/chefhu-2026/internal/domains/schedule/repository"
	scheduleService "github.com/chenawi66/chefhu-2026/internal/domains/schedule/service"
	dishHandler "github.com/chenawi66/chefhu-2026/internal/handlers/dish"
	scheduleHandler "github.com/chenawi66/chefhu-2026/internal/handlers/schedule"
	"github.com/chenawi66/chefhu-2026/internal/notifier"
	"github.com/chenawi66/chefhu-2026/shared/cache"
	"github.com/chenawi66/chefhu-2026/transport/http"
	"github.com/chenawi66/chefhu-2026/transport/http/middleware"
	"github.com/chenawi66/chefhu-2026/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	cache.New,
	notifier.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var dishDomain = wire.NewSet(
	dishService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	dishDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	dishHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
