package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chenawi66/chefhu-2026/infras/otel/mocks"
	"github.com/chenawi66/chefhu-2026/internal/domains/dish/model"
	"github.com/chenawi66/chefhu-2026/internal/domains/dish/service"
)

func TestDishService_List(t *testing.T) {
	svc := service.New(mocks.NewOtel())

	dishes := svc.List(context.Background())

	assert.Equal(t, len(model.Catalog), len(dishes))
	assert.Equal(t, model.Catalog[0], dishes[0])
}

func TestDishService_ByDate(t *testing.T) {
	svc := service.New(mocks.NewOtel())

	tests := []struct {
		name       string
		date       string
		wantSeries string
		wantCount  int
	}{
		{
			name:       "date with a series",
			date:       "2026-03-14",
			wantSeries: "201A",
			wantCount:  7,
		},
		{
			name:       "later date with a series",
			date:       "2026-06-27",
			wantSeries: "203A",
			wantCount:  7,
		},
		{
			name:      "date without a series",
			date:      "2026-03-07",
			wantCount: 0,
		},
		{
			name:      "malformed date",
			date:      "not-a-date",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes := svc.ByDate(context.Background(), tt.date)

			assert.Len(t, dishes, tt.wantCount)
			for _, dish := range dishes {
				assert.Equal(t, tt.wantSeries, dish.Series)
			}
		})
	}
}
