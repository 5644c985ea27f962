package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/infras/otel/mocks"
	scheduleMocks "github.com/chenawi66/chefhu-2026/internal/domains/schedule/mocks"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model/dto"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/repository"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/service"
	"github.com/chenawi66/chefhu-2026/shared/cache"
	cacheMocks "github.com/chenawi66/chefhu-2026/shared/cache/mocks"
	"github.com/chenawi66/chefhu-2026/shared/failure"
	"github.com/chenawi66/chefhu-2026/shared/password"
)

type fakeNotifier struct{}

func (fakeNotifier) ReservationCreated(ctx context.Context, res model.Reservation) error {
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.MinGuests = 4
	cfg.Booking.MaxGuests = 4
	cfg.Booking.PricePerGuest = 380
	cfg.Admin.Password = "secret"
	cfg.Cache.TTL = 300

	return cfg
}

func TestScheduleService_Slots(t *testing.T) {
	cachedSlots := []model.TimeSlot{{Date: "2026-03-14", Times: []string{"18:00"}}}
	storedSlots := []model.TimeSlot{{Date: "2026-03-21", Times: []string{"18:00"}}}

	tests := []struct {
		name      string
		setupMock func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache)
		want      []model.TimeSlot
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "slots:list", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]model.TimeSlot) = cachedSlots

						return nil
					})
			},
			want: cachedSlots,
		},
		{
			name: "cache miss falls back to store",
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "slots:list", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
				repo.EXPECT().
					Slots(gomock.Any()).
					Return(storedSlots, nil)
				c.EXPECT().
					Save(gomock.Any(), "slots:list", gomock.Any(), 300).
					Return(nil).
					AnyTimes()
			},
			want: storedSlots,
		},
		{
			name: "cache fault serves from store without reseeding",
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "slots:list", gomock.Any()).
					Return(errors.New("connection refused"))
				repo.EXPECT().
					Slots(gomock.Any()).
					Return(storedSlots, nil)
				c.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			want: storedSlots,
		},
		{
			name: "store error",
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "slots:list", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
				repo.EXPECT().
					Slots(gomock.Any()).
					Return(nil, errors.New("disk error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := scheduleMocks.NewMockSchedule(ctrl)
			mockCache := cacheMocks.NewMockCache(ctrl)
			tt.setupMock(mockRepo, mockCache)

			svc := service.New(mockRepo, testConfig(), mockCache, fakeNotifier{}, mocks.NewOtel())

			got, err := svc.Slots(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleService_Reserve(t *testing.T) {
	validReq := dto.ReserveRequest{
		Name:         "王小明",
		Phone:        "0911000000",
		Date:         "2026-03-14",
		Time:         "18:00",
		Guests:       4,
		Relationship: "新朋友",
	}

	tests := []struct {
		name      string
		req       dto.ReserveRequest
		setupMock func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache)
		wantCode  int
	}{
		{
			name: "successful reservation",
			req:  validReq,
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil)
				c.EXPECT().
					Clear(gomock.Any(), "slots").
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "wrong group size",
			req: func() dto.ReserveRequest {
				r := validReq
				r.Guests = 3

				return r
			}(),
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed date",
			req: func() dto.ReserveRequest {
				r := validReq
				r.Date = "03/14/2026"

				return r
			}(),
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot already taken",
			req:  validReq,
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotUnavailable)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			req:  validReq,
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(errors.New("disk error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := scheduleMocks.NewMockSchedule(ctrl)
			mockCache := cacheMocks.NewMockCache(ctrl)
			tt.setupMock(mockRepo, mockCache)

			svc := service.New(mockRepo, testConfig(), mockCache, fakeNotifier{}, mocks.NewOtel())

			res, err := svc.Reserve(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			assert.NoError(t, err)
			assert.True(t, res.Success)
			assert.NotEmpty(t, res.Reservation.ID)
			assert.Equal(t, tt.req.Name, res.Reservation.Name)
			assert.False(t, res.Reservation.Confirmed)
		})
	}
}

func TestScheduleService_Manage(t *testing.T) {
	slots := []model.TimeSlot{{Date: "2026-03-14", Times: []string{"18:00"}}}

	tests := []struct {
		name      string
		req       dto.ManageRequest
		setupMock func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache)
		wantCode  int
	}{
		{
			name: "open slot",
			req:  dto.ManageRequest{Password: "secret", Action: dto.ActionOpen, Date: "2026-03-14", Time: "18:00"},
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					OpenSlot(gomock.Any(), "2026-03-14", "18:00").
					Return(slots, nil)
				c.EXPECT().
					Clear(gomock.Any(), "slots").
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "close slot",
			req:  dto.ManageRequest{Password: "secret", Action: dto.ActionClose, Date: "2026-03-14", Time: "18:00"},
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					CloseSlot(gomock.Any(), "2026-03-14", "18:00").
					Return(slots, nil)
				c.EXPECT().
					Clear(gomock.Any(), "slots").
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "reset schedule",
			req:  dto.ManageRequest{Password: "secret", Action: dto.ActionReset},
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					Reset(gomock.Any()).
					Return(slots, nil)
				c.EXPECT().
					Clear(gomock.Any(), "slots").
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "wrong password",
			req:       dto.ManageRequest{Password: "nope", Action: dto.ActionReset},
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "store failure",
			req:  dto.ManageRequest{Password: "secret", Action: dto.ActionReset},
			setupMock: func(repo *scheduleMocks.MockSchedule, c *cacheMocks.MockCache) {
				repo.EXPECT().
					Reset(gomock.Any()).
					Return(nil, errors.New("disk error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := scheduleMocks.NewMockSchedule(ctrl)
			mockCache := cacheMocks.NewMockCache(ctrl)
			tt.setupMock(mockRepo, mockCache)

			svc := service.New(mockRepo, testConfig(), mockCache, fakeNotifier{}, mocks.NewOtel())

			res, err := svc.Manage(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			assert.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, slots, res.Slots)
		})
	}
}

func TestScheduleService_Manage_HashedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)

	hash, err := password.Hash("secret")
	assert.NoError(t, err)

	cfg := testConfig()
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = hash

	mockRepo.EXPECT().
		Reset(gomock.Any()).
		Return([]model.TimeSlot{}, nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), "slots").
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, fakeNotifier{}, mocks.NewOtel())

	_, err = svc.Manage(context.Background(), dto.ManageRequest{Password: "secret", Action: dto.ActionReset})
	assert.NoError(t, err)

	_, err = svc.Manage(context.Background(), dto.ManageRequest{Password: "wrong", Action: dto.ActionReset})
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}
