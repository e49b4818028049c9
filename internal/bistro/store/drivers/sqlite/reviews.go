package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type reviewsRepo struct {
	q querier
}

func (r *reviewsRepo) ListReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, details, rating, created_at FROM reviews ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Details, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewsRepo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO reviews (id, name, details, rating, created_at) VALUES (?, ?, ?, ?, ?)`,
		rv.ID, rv.Name, rv.Details, rv.Rating, rv.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}
