package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type cartsRepo struct {
	q querier
}

const cartColumns = `id, menu_id, email, name, image, price, created_at`

func scanCartItem(row interface{ Scan(...any) error }) (domain.CartItem, error) {
	var c domain.CartItem
	err := row.Scan(&c.ID, &c.MenuID, &c.Email, &c.Name, &c.Image, &c.Price, &c.CreatedAt)
	return c, err
}

func (r *cartsRepo) ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cartColumns+` FROM carts WHERE email = ? ORDER BY created_at, id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		c, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *cartsRepo) GetCartItem(ctx context.Context, id string) (domain.CartItem, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+cartColumns+` FROM carts WHERE id = ?`, id)
	c, err := scanCartItem(row)
	if err != nil {
		return domain.CartItem{}, mapNotFound(err)
	}
	return c, nil
}

func (r *cartsRepo) CreateCartItem(ctx context.Context, c domain.CartItem) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO carts (id, menu_id, email, name, image, price, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.MenuID, c.Email, c.Name, c.Image, c.Price, c.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *cartsRepo) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.q.ExecContext(ctx, `DELETE FROM carts WHERE id = ?`, id))
}

func (r *cartsRepo) DeleteCartItemsForEmail(ctx context.Context, email string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, email)
	for _, id := range ids {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	return rowsAffected(r.q.ExecContext(ctx,
		`DELETE FROM carts WHERE email = ? AND id IN (`+placeholders+`)`, args...))
}
