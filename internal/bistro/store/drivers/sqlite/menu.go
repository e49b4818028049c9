package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type menuRepo struct {
	q querier
}

const menuColumns = `id, name, recipe, image, category, price`

func scanMenuItem(row interface{ Scan(...any) error }) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Recipe, &m.Image, &m.Category, &m.Price)
	return m, err
}

func (r *menuRepo) ListMenuItems(ctx context.Context, category string) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY category, name, id`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *menuRepo) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = ?`, id)
	m, err := scanMenuItem(row)
	if err != nil {
		return domain.MenuItem{}, mapNotFound(err)
	}
	return m, nil
}

func (r *menuRepo) CountMenuItems(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}

func (r *menuRepo) CreateMenuItem(ctx context.Context, m domain.MenuItem) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO menu_items (id, name, recipe, image, category, price) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Recipe, m.Image, m.Category, m.Price,
	)
	return mapConstraint(err)
}

func (r *menuRepo) UpdateMenuItem(ctx context.Context, m domain.MenuItem) (int64, error) {
	return rowsAffected(r.q.ExecContext(ctx,
		`UPDATE menu_items SET name = ?, recipe = ?, image = ?, category = ?, price = ? WHERE id = ?`,
		m.Name, m.Recipe, m.Image, m.Category, m.Price, m.ID,
	))
}

func (r *menuRepo) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.q.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id))
}
