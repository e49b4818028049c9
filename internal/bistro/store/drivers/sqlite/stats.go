package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type statsRepo struct {
	q querier
}

func (r *statsRepo) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var s domain.AdminStats
	err := r.q.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM menu_items),
			(SELECT COUNT(*) FROM payments),
			(SELECT COALESCE(SUM(price), 0) FROM payments)`,
	).Scan(&s.Users, &s.MenuItems, &s.Orders, &s.Revenue)
	return s, err
}

// OrderStats expands every payment's menu_item_ids and joins them against the
// current menu. Items deleted from the menu since purchase are not counted.
func (r *statsRepo) OrderStats(ctx context.Context) ([]domain.CategoryStats, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT m.category, COUNT(*), COALESCE(SUM(m.price), 0)
		FROM payments p, json_each(p.menu_item_ids) j
		JOIN menu_items m ON m.id = j.value
		GROUP BY m.category
		ORDER BY m.category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.CategoryStats{}
	for rows.Next() {
		var cs domain.CategoryStats
		if err := rows.Scan(&cs.Category, &cs.Quantity, &cs.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, cs)
	}
	return stats, rows.Err()
}
