package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/idx"
)

var menuCategories = map[string]struct{}{
	domain.CategorySalad:   {},
	domain.CategoryPizza:   {},
	domain.CategorySoup:    {},
	domain.CategoryDessert: {},
	domain.CategoryDrinks:  {},
	domain.CategoryOffered: {},
	domain.CategoryPopular: {},
}

type MenuService struct {
	Store store.Store
}

func (s *MenuService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return s.Store.Menu().ListMenuItems(ctx, strings.ToLower(strings.TrimSpace(category)))
}

func (s *MenuService) Count(ctx context.Context) (int64, error) {
	return s.Store.Menu().CountMenuItems(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (domain.MenuItem, error) {
	m, err := s.Store.Menu().GetMenuItem(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.MenuItem{}, ErrMenuItemNotFound
	}
	return m, err
}

// Create validates and stores a new item. The ID on m is ignored.
func (s *MenuService) Create(ctx context.Context, m domain.MenuItem) (string, error) {
	m, err := normaliseMenuItem(m)
	if err != nil {
		return "", err
	}
	m.ID = idx.New().String()

	if err := s.Store.Menu().CreateMenuItem(ctx, m); err != nil {
		return "", fmt.Errorf("create menu item: %w", err)
	}
	return m.ID, nil
}

// Update replaces every field of the item with id.
func (s *MenuService) Update(ctx context.Context, id string, m domain.MenuItem) (int64, error) {
	m, err := normaliseMenuItem(m)
	if err != nil {
		return 0, err
	}
	m.ID = id

	n, err := s.Store.Menu().UpdateMenuItem(ctx, m)
	if err != nil {
		return 0, fmt.Errorf("update menu item: %w", err)
	}
	if n == 0 {
		return 0, ErrMenuItemNotFound
	}
	return n, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.Store.Menu().DeleteMenuItem(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	if n == 0 {
		return 0, ErrMenuItemNotFound
	}
	return n, nil
}

func normaliseMenuItem(m domain.MenuItem) (domain.MenuItem, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Category = strings.ToLower(strings.TrimSpace(m.Category))

	if m.Name == "" {
		return m, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, ok := menuCategories[m.Category]; !ok {
		return m, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, m.Category)
	}
	if m.Price < 0 {
		return m, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return m, nil
}
