package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/infras/otel"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model/dto"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/repository"
	"github.com/chenawi66/chefhu-2026/internal/notifier"
	"github.com/chenawi66/chefhu-2026/shared"
	"github.com/chenawi66/chefhu-2026/shared/cache"
	"github.com/chenawi66/chefhu-2026/shared/constant"
	"github.com/chenawi66/chefhu-2026/shared/failure"
	"github.com/chenawi66/chefhu-2026/shared/password"
	"github.com/chenawi66/chefhu-2026/shared/timezone"
)

const (
	cacheSlots = "slots"
)

type Schedule interface {
	Slots(ctx context.Context) ([]model.TimeSlot, error)
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.ReserveResponse, error)
	Manage(ctx context.Context, req dto.ManageRequest) (dto.ManageResponse, error)
}

type serviceImpl struct {
	repo     repository.Schedule
	cfg      *config.Config
	cache    cache.Cache
	notifier notifier.Notifier
	otel     otel.Otel
}

func New(repo repository.Schedule, cfg *config.Config, c cache.Cache, n notifier.Notifier, ot otel.Otel) Schedule {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    c,
		notifier: n,
		otel:     ot,
	}
}

func (s *serviceImpl) Slots(ctx context.Context) (res []model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSlots, "list")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	miss := errors.Is(err, cache.Nil)
	if !miss {
		log.Error().Err(err).Msg("failed to read slots from cache")
	}

	res, err = s.repo.Slots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return nil, failure.InternalError(err)
	}

	// Reseed only on a true miss. A faulting cache serves straight from
	// the store and is left alone until it answers again.
	if miss {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save slots to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.ReserveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validatePolicy(req); err != nil {
		return res, err
	}

	reservation := req.ToModel()

	if err = s.repo.CreateReservation(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return res, failure.BadRequestFromString("requested time slot is not available")
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, failure.InternalError(err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCache(c, s.cache, cacheSlots)

		if err := s.notifier.ReservationCreated(c, reservation); err != nil {
			log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to notify about reservation")
		}
	}()

	return dto.ReserveResponse{
		Success:     true,
		Reservation: reservation,
	}, nil
}

func (s *serviceImpl) Manage(ctx context.Context, req dto.ManageRequest) (res dto.ManageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Manage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.verifySecret(req.Password); err != nil {
		log.Warn().Str("action", req.Action).Msg("manage request with wrong password")

		return res, err
	}

	var slots []model.TimeSlot

	switch req.Action {
	case dto.ActionOpen:
		slots, err = s.repo.OpenSlot(ctx, req.Date, req.Time)
	case dto.ActionClose:
		slots, err = s.repo.CloseSlot(ctx, req.Date, req.Time)
	case dto.ActionReset:
		slots, err = s.repo.Reset(ctx)
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown action: %s", req.Action))
	}

	if err != nil {
		log.Error().Err(err).Str("action", req.Action).Msg("failed to apply slot action")

		return res, failure.InternalError(err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCache(c, s.cache, cacheSlots)
	}()

	return dto.ManageResponse{
		Success: true,
		Slots:   slots,
	}, nil
}

// validatePolicy checks the booking rules that the struct tags cannot
// express: the allowed party size and well-formed date and time values.
func (s *serviceImpl) validatePolicy(req dto.ReserveRequest) error {
	min, max := s.cfg.Booking.MinGuests, s.cfg.Booking.MaxGuests

	if req.Guests < min || req.Guests > max {
		if min == max {
			return failure.BadRequestFromString(fmt.Sprintf("group size must be exactly %d people", min))
		}

		return failure.BadRequestFromString(fmt.Sprintf("group size must be between %d and %d people", min, max))
	}

	if _, err := timezone.Parse(constant.DateFormat, req.Date); err != nil {
		return failure.BadRequestFromString("date must be in YYYY-MM-DD format")
	}

	if _, err := timezone.Parse(constant.TimeOfDayFormat, req.Time); err != nil {
		return failure.BadRequestFromString("time must be in HH:MM format")
	}

	return nil
}

// verifySecret checks the shared admin password, preferring the bcrypt
// hash when one is configured over the plaintext fallback.
func (s *serviceImpl) verifySecret(secret string) error {
	var err error

	if hash := s.cfg.Admin.PasswordHash; hash != "" {
		err = password.Verify(secret, hash)
	} else {
		err = password.VerifyPlain(secret, s.cfg.Admin.Password)
	}

	if err != nil {
		return failure.Unauthorized("unauthorized")
	}

	return nil
}
