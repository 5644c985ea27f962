package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/infras/otel"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model/dto"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/service"
	"github.com/chenawi66/chefhu-2026/shared/constant"
	"github.com/chenawi66/chefhu-2026/shared/validator"
	"github.com/chenawi66/chefhu-2026/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slots", handler.GetSlots)
	router.Post("/reserve", handler.Reserve)
	router.Post("/manage", handler.Manage)
}

// GetSlots lists every date and time still open for booking.
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	slots, err := handler.service.Slots(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, dto.SlotsResponse{Success: true, Slots: slots})
}

// Reserve books a slot for a party and confirms with the stored reservation.
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.ReserveRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created for " + res.Reservation.Date + " " + res.Reservation.Time)

	response.WithJSON(w, http.StatusCreated, res)
}

// Manage applies an operator action (open, close, reset) to the schedule.
func (handler *Handler) Manage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Manage")
	defer scope.End()

	req := dto.ManageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Manage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("action", req.Action).Msg("failed to apply manage action")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Manage action applied: " + req.Action)

	response.WithJSON(w, http.StatusOK, res)
}
