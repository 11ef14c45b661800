package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// WalletLockReadRepository handles wallet lock read operations.
type WalletLockReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletLockReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletLockReadRepository {
	return &WalletLockReadRepository{db: db, txGetter: txGetter}
}

func (r *WalletLockReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListActiveByWallet returns unresolved locks for a wallet.
func (r *WalletLockReadRepository) ListActiveByWallet(ctx context.Context, walletID uuid.UUID) ([]models.WalletLockDB, error) {
	const query = `
		SELECT lock_id, wallet_id, locked_by, reason, notes, expires_at, resolved_at, created_at
		FROM wallet_locks
		WHERE wallet_id = $1 AND resolved_at IS NULL
		ORDER BY created_at ASC
	`

	var locks []models.WalletLockDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &locks, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(locks),
		"error", err,
	)

	return locks, err
}

// ListExpired returns temporary locks whose expiry has passed and which have
// not been resolved yet.
func (r *WalletLockReadRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]models.WalletLockDB, error) {
	const query = `
		SELECT lock_id, wallet_id, locked_by, reason, notes, expires_at, resolved_at, created_at
		FROM wallet_locks
		WHERE resolved_at IS NULL AND expires_at IS NOT NULL AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2
	`

	var locks []models.WalletLockDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &locks, query, now, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now, limit},
		"result", len(locks),
		"error", err,
	)

	return locks, err
}

// WalletLockWriteRepository handles wallet lock write operations.
type WalletLockWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletLockWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletLockWriteRepository {
	return &WalletLockWriteRepository{db: db, txGetter: txGetter}
}

func (r *WalletLockWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new wallet lock.
func (r *WalletLockWriteRepository) Save(ctx context.Context, lock *models.WalletLockDB) error {
	const query = `
		INSERT INTO wallet_locks (lock_id, wallet_id, locked_by, reason, notes, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		lock.LockID, lock.WalletID, lock.LockedBy, lock.Reason, lock.Notes, lock.ExpiresAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lock.LockID, lock.WalletID, lock.Reason},
		"error", err,
	)

	return err
}

// Resolve marks a lock as lifted. Already resolved locks are left untouched.
func (r *WalletLockWriteRepository) Resolve(ctx context.Context, lockID uuid.UUID) error {
	const query = `
		UPDATE wallet_locks
		SET resolved_at = NOW()
		WHERE lock_id = $1 AND resolved_at IS NULL
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, lockID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lockID},
		"error", err,
	)

	return err
}
