//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	authService "inn/internal/domains/auth/service"
	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	userRepository "inn/internal/domains/user/repository"
	userService "inn/internal/domains/user/service"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	roomHandler "inn/internal/handlers/room"
	userHandler "inn/internal/handlers/user"

	"github.com/google/wire"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	userHandler.New,
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
