//go:build wireinject
// +build wireinject

package di

import (
	"carehub/config"
	"carehub/infras/jwt"
	"carehub/infras/kafka"
	"carehub/infras/otel"
	"carehub/infras/postgres"
	"carehub/infras/redis"
	"carehub/infras/s3"
	"carehub/permissions"
	"carehub/shared/cache"
	"carehub/transport/http"
	"carehub/transport/http/middleware"
	"carehub/transport/http/router"

	"github.com/google/wire"

	authService "carehub/internal/domains/auth/service"
	bookingEvent "carehub/internal/domains/booking/event"
	bookingRepository "carehub/internal/domains/booking/repository"
	bookingService "carehub/internal/domains/booking/service"
	nannyRepository "carehub/internal/domains/nanny/repository"
	nannyService "carehub/internal/domains/nanny/service"
	userRepository "carehub/internal/domains/user/repository"
	userService "carehub/internal/domains/user/service"
	authHandler "carehub/internal/handlers/auth"
	bookingHandler "carehub/internal/handlers/booking"
	healthHandler "carehub/internal/handlers/health"
	nannyHandler "carehub/internal/handlers/nanny"
	userHandler "carehub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var nannyDomain = wire.NewSet(
	nannyRepository.New,
	nannyRepository.NewReview,
	nannyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	userDomain,
	nannyDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	nannyHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
