package dish

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chenawi66/chefhu-2026/infras/otel"
	"github.com/chenawi66/chefhu-2026/internal/domains/dish/service"
	"github.com/chenawi66/chefhu-2026/shared/constant"
	"github.com/chenawi66/chefhu-2026/transport/http/response"
)

type Handler struct {
	service service.Dish
	otel    otel.Otel
}

func New(service service.Dish, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dishes", handler.GetDishes)
}

// GetDishes returns the practice menu, narrowed to one evening's series
// when a date query parameter is given.
func (handler *Handler) GetDishes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDishes")
	defer scope.End()

	date := r.URL.Query().Get("date")

	if date != "" {
		response.WithJSON(w, http.StatusOK, handler.service.ByDate(ctx, date))

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.List(ctx))
}
