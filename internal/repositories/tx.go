package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
)

// TxRunner executes a function inside a single database transaction.
// The transaction is injected into the context with the provided setter so
// that repositories configured with the matching txGetter pick it up.
type TxRunner struct {
	db       *sqlx.DB
	txSetter func(ctx context.Context, tx *sqlx.Tx) context.Context
}

func NewTxRunner(db *sqlx.DB, txSetter func(ctx context.Context, tx *sqlx.Tx) context.Context) *TxRunner {
	return &TxRunner{db: db, txSetter: txSetter}
}

// RunInTx begins a transaction, runs fn with the transaction in the context,
// and commits. Any error or panic rolls the whole transaction back, so no
// partial mutation is ever persisted.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		err = tx.Commit()
	}()

	err = fn(r.txSetter(ctx, tx))
	return err
}
