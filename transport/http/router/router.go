package router

import (
	"inn/internal/handlers/auth"
	"inn/internal/handlers/booking"
	"inn/internal/handlers/room"
	"inn/internal/handlers/user"
	"inn/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Booking booking.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	appMiddleware  middleware.AppMiddleware
	authMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.appMiddleware.Tracing)
		routerGroup.Use(r.appMiddleware.RateLimit())
		routerGroup.Use(r.authMiddleware.APIKey)
		routerGroup.Use(r.authMiddleware.Auth)
		routerGroup.Use(r.authMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		appMiddleware:  appMiddleware,
		authMiddleware: authMiddleware,
	}
}
