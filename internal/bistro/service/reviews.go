package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/idx"
)

type ReviewService struct {
	Store store.Store
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.Store.Reviews().ListReviews(ctx)
}

func (s *ReviewService) Create(ctx context.Context, r domain.Review) (string, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return "", fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	r.ID = idx.New().String()
	r.CreatedAt = time.Now().UTC()

	if err := s.Store.Reviews().CreateReview(ctx, r); err != nil {
		return "", fmt.Errorf("create review: %w", err)
	}
	return r.ID, nil
}
