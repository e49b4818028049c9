package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/bistro/internal/bistro/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the outer DB stays open

func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users       { return &usersRepo{q: t.tx} }
func (t *txStore) Menu() store.Menu         { return &menuRepo{q: t.tx} }
func (t *txStore) Reviews() store.Reviews   { return &reviewsRepo{q: t.tx} }
func (t *txStore) Carts() store.Carts       { return &cartsRepo{q: t.tx} }
func (t *txStore) Payments() store.Payments { return &paymentsRepo{q: t.tx} }
func (t *txStore) Stats() store.Stats       { return &statsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
