package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per resource. A Tx is itself a Store, so the
// same repository code runs inside and outside a transaction.
type Store interface {
	Users() Users
	Menu() Menu
	Reviews() Reviews
	Carts() Carts
	Payments() Payments
	Stats() Stats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is the single point-read behind every role decision.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a user. Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	ListUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)

	// SetRole sets or clears (role == "") the user's role. Returns the number
	// of rows whose role actually changed.
	SetRole(ctx context.Context, id, role string) (int64, error)

	// DeleteUser returns the number of rows removed.
	DeleteUser(ctx context.Context, id string) (int64, error)
}

type Menu interface {
	// ListMenuItems returns every item, or only those in category when it is non-empty.
	ListMenuItems(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CreateMenuItem(ctx context.Context, m domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, m domain.MenuItem) (int64, error)
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type Reviews interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, r domain.Review) error
}

type Carts interface {
	ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error)
	GetCartItem(ctx context.Context, id string) (domain.CartItem, error)
	CreateCartItem(ctx context.Context, c domain.CartItem) error
	DeleteCartItem(ctx context.Context, id string) (int64, error)

	// DeleteCartItemsForEmail removes the listed ids that belong to email and
	// ignores the rest.
	DeleteCartItemsForEmail(ctx context.Context, email string, ids []string) (int64, error)
}

type Payments interface {
	CreatePayment(ctx context.Context, p domain.Payment) error

	// ListPaymentsByEmail returns payments newest first.
	ListPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type Stats interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)

	// OrderStats groups every purchased menu item by category.
	OrderStats(ctx context.Context) ([]domain.CategoryStats, error)
}
