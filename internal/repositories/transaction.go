package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// TransactionReadRepository handles wallet transaction read operations.
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

func (r *TransactionReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a transaction with its allocation snapshot.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.WalletTransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, direction, amount, currency, type, status,
		       ref_type, ref_id, lot_allocations, created_at, updated_at
		FROM wallet_transactions
		WHERE transaction_id = $1
	`

	var txn models.WalletTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetPendingForUpdate returns the transaction under a row lock only when it
// is still pending. sql.ErrNoRows means the transaction does not exist or
// already reached a terminal state.
func (r *TransactionReadRepository) GetPendingForUpdate(ctx context.Context, transactionID uuid.UUID) (*models.WalletTransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, direction, amount, currency, type, status,
		       ref_type, ref_id, lot_allocations, created_at, updated_at
		FROM wallet_transactions
		WHERE transaction_id = $1 AND status = 'pending'
		FOR UPDATE
	`

	var txn models.WalletTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransactionWriteRepository handles wallet transaction write operations.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new transaction with its allocation snapshot.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.WalletTransactionDB) error {
	const query = `
		INSERT INTO wallet_transactions (transaction_id, user_id, direction, amount, currency, type, status,
		                                 ref_type, ref_id, lot_allocations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		txn.TransactionID, txn.UserID, txn.Direction, txn.Amount, txn.Currency,
		txn.Type, txn.Status, txn.RefType, txn.RefID, txn.LotAllocations)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.UserID, txn.Direction, txn.Amount, txn.Type},
		"error", err,
	)

	return err
}

// FailPendingByOrder fails every still-pending debit transaction for the
// order. Used by release-by-order and the expiry sweep, where the caller has
// no transaction handle. Orders without pending transactions are a no-op.
func (r *TransactionWriteRepository) FailPendingByOrder(ctx context.Context, userID uuid.UUID, orderID string) error {
	const query = `
		UPDATE wallet_transactions
		SET status = 'failed', updated_at = NOW()
		WHERE user_id = $1 AND ref_type = 'order' AND ref_id = $2 AND status = 'pending'
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, orderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, orderID},
		"error", err,
	)

	return err
}

// SetStatus moves a pending transaction into a terminal state. Fails with
// sql.ErrNoRows when the transaction already completed or failed.
func (r *TransactionWriteRepository) SetStatus(ctx context.Context, transactionID uuid.UUID, status string) error {
	const query = `
		UPDATE wallet_transactions
		SET status = $2, updated_at = NOW()
		WHERE transaction_id = $1 AND status = 'pending'
		RETURNING transaction_id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, transactionID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, status},
		"error", err,
	)

	return err
}
