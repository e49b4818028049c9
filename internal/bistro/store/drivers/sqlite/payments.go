package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type paymentsRepo struct {
	q querier
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	cartIDs, err := encodeIDs(p.CartIDs)
	if err != nil {
		return fmt.Errorf("encode cart ids: %w", err)
	}
	menuIDs, err := encodeIDs(p.MenuItemIDs)
	if err != nil {
		return fmt.Errorf("encode menu item ids: %w", err)
	}

	_, err = r.q.ExecContext(ctx,
		`INSERT INTO payments (id, email, price, transaction_id, status, cart_ids, menu_item_ids, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.Price, p.TransactionID, p.Status, cartIDs, menuIDs, p.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *paymentsRepo) ListPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, email, price, transaction_id, status, cart_ids, menu_item_ids, created_at
		 FROM payments WHERE email = ? ORDER BY created_at DESC, id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var (
			p                domain.Payment
			cartIDs, menuIDs string
		)
		if err := rows.Scan(&p.ID, &p.Email, &p.Price, &p.TransactionID, &p.Status, &cartIDs, &menuIDs, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.CartIDs, err = decodeIDs(cartIDs); err != nil {
			return nil, fmt.Errorf("decode cart ids for payment %s: %w", p.ID, err)
		}
		if p.MenuItemIDs, err = decodeIDs(menuIDs); err != nil {
			return nil, fmt.Errorf("decode menu item ids for payment %s: %w", p.ID, err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
