package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository starts transactions at READ COMMITTED; row locks taken with
// FOR UPDATE are what serialize writers.
func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db, opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx ignores sql.ErrTxDone so it is safe to defer after a commit.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return err
	}
	return nil
}
