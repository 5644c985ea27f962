package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/chenawi66/chefhu-2026/internal/handlers/dish"
	"github.com/chenawi66/chefhu-2026/internal/handlers/schedule"
)

type DomainHandlers struct {
	Dish     dish.Handler
	Schedule schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Dish.Router(router)
	r.DomainHandlers.Schedule.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
