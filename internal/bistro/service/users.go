package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/idx"
	"github.com/aussiebroadwan/bistro/pkg/jwtx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// CreateUser registers a user on first sign-in. If the email is already
// known nothing is written and created is false.
func (s *UserService) CreateUser(ctx context.Context, email, name, photoURL string) (id string, created bool, err error) {
	log := slogx.FromContext(ctx)

	email = jwtx.NormaliseEmail(email)
	if email == "" {
		return "", false, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Existing user is not an error.
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		if err == nil {
			id = existing.ID
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup user: %w", err)
		}

		// 2. Insert.
		u := domain.User{
			ID:        idx.New().String(),
			Email:     email,
			Name:      name,
			PhotoURL:  photoURL,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		id, created = u.ID, true
		return nil
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with a concurrent sign-in for the same email.
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if created {
		log.Info("user created", slog.String("user_id", id))
	}
	return id, created, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, jwtx.NormaliseEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// GrantAdmin gives the user the admin role. It returns the number of records
// whose role changed, which is 0 if the user was already an admin.
func (s *UserService) GrantAdmin(ctx context.Context, userID string) (int64, error) {
	return s.setRole(ctx, userID, domain.RoleAdmin)
}

// RevokeAdmin clears the user's role.
func (s *UserService) RevokeAdmin(ctx context.Context, userID string) (int64, error) {
	return s.setRole(ctx, userID, "")
}

func (s *UserService) setRole(ctx context.Context, userID, role string) (int64, error) {
	log := slogx.FromContext(ctx)

	var modified int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("lookup user: %w", err)
		}

		n, err := tx.Users().SetRole(ctx, userID, role)
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		modified = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("user role changed",
		slog.String("user_id", userID),
		slog.String("role", role),
		slog.Int64("modified", modified),
	)
	return modified, nil
}

// RemoveUser deletes the user record.
func (s *UserService) RemoveUser(ctx context.Context, userID string) (int64, error) {
	n, err := s.Store.Users().DeleteUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return 0, ErrUserNotFound
	}

	slogx.FromContext(ctx).Info("user removed", slog.String("user_id", userID))
	return n, nil
}
