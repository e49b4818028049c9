package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/idx"
	"github.com/aussiebroadwan/bistro/pkg/jwtx"
)

type CartService struct {
	Store store.Store
}

func (s *CartService) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.Store.Carts().ListCartItems(ctx, jwtx.NormaliseEmail(email))
}

// Add puts an item in the cart of c.Email.
func (s *CartService) Add(ctx context.Context, c domain.CartItem) (string, error) {
	c.Email = jwtx.NormaliseEmail(c.Email)
	if c.Email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if c.MenuID == "" {
		return "", fmt.Errorf("%w: menuId is required", ErrInvalidInput)
	}
	if c.Price < 0 {
		return "", fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	c.ID = idx.New().String()
	c.CreatedAt = time.Now().UTC()

	if err := s.Store.Carts().CreateCartItem(ctx, c); err != nil {
		return "", fmt.Errorf("create cart item: %w", err)
	}
	return c.ID, nil
}

// Remove deletes a cart item on behalf of owner. Items in other users' carts
// are refused with ErrNotOwner.
func (s *CartService) Remove(ctx context.Context, owner, id string) (int64, error) {
	var deleted int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		item, err := tx.Carts().GetCartItem(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCartItemNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup cart item: %w", err)
		}
		if item.Email != jwtx.NormaliseEmail(owner) {
			return ErrNotOwner
		}

		deleted, err = tx.Carts().DeleteCartItem(ctx, id)
		if err != nil {
			return fmt.Errorf("delete cart item: %w", err)
		}
		return nil
	})
	return deleted, err
}
