package service

import (
	"context"
	"slices"

	"github.com/chenawi66/chefhu-2026/infras/otel"
	"github.com/chenawi66/chefhu-2026/internal/domains/dish/model"
	"github.com/chenawi66/chefhu-2026/shared/constant"
)

// Dish serves the static practice menu.
type Dish interface {
	List(ctx context.Context) []model.Dish
	ByDate(ctx context.Context, date string) []model.Dish
}

type serviceImpl struct {
	otel otel.Otel
}

func New(ot otel.Otel) Dish {
	return &serviceImpl{
		otel: ot,
	}
}

func (s *serviceImpl) List(ctx context.Context) []model.Dish {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListDishes")
	defer scope.End()

	return slices.Clone(model.Catalog)
}

// ByDate resolves the series scheduled for the date and returns its dishes.
// Dates without a series produce an empty list, not an error.
func (s *serviceImpl) ByDate(ctx context.Context, date string) []model.Dish {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListDishesByDate")
	defer scope.End()

	series, ok := model.DateSeries[date]
	if !ok {
		return []model.Dish{}
	}

	dishes := make([]model.Dish, 0, 8)

	for _, dish := range model.Catalog {
		if dish.Series == series {
			dishes = append(dishes, dish)
		}
	}

	return dishes
}
