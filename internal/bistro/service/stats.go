package service

import (
	"context"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
)

type StatsService struct {
	Store store.Store
}

func (s *StatsService) Admin(ctx context.Context) (domain.AdminStats, error) {
	return s.Store.Stats().AdminStats(ctx)
}

func (s *StatsService) Orders(ctx context.Context) ([]domain.CategoryStats, error) {
	return s.Store.Stats().OrderStats(ctx)
}
