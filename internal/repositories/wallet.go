package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletReadRepository handles wallet read operations.
type WalletReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReadRepository {
	return &WalletReadRepository{db: db, txGetter: txGetter}
}

func (r *WalletReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByUserID returns the user's wallet, or sql.ErrNoRows when the user has
// no wallet yet.
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, total_available, total_frozen, status, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetByID returns a wallet by its identifier.
func (r *WalletReadRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, total_available, total_frozen, status, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetForUpdate returns the user's wallet under an exclusive row lock.
// Must be called inside a transaction; the lock is held until commit.
func (r *WalletReadRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, total_available, total_frozen, status, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// WalletWriteRepository handles wallet write operations.
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create lazily creates a wallet on first access. Existing wallets are left
// untouched and returned as-is.
func (r *WalletWriteRepository) Create(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	const query = `
		INSERT INTO wallets (wallet_id, user_id, currency, total_available, total_frozen, status, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = wallets.updated_at
		RETURNING wallet_id, user_id, currency, total_available, total_frozen, status, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, currency, models.WalletStatusActive)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ApplyFreeze moves amount from available to frozen. Fails with sql.ErrNoRows
// when the wallet does not have enough available balance.
func (r *WalletWriteRepository) ApplyFreeze(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallets
		SET total_available = total_available - $2,
		    total_frozen = total_frozen + $2,
		    updated_at = NOW()
		WHERE wallet_id = $1 AND total_available >= $2
		RETURNING total_available
	`

	var available decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &available, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", available,
		"error", err,
	)

	return err
}

// ApplyDeduct finalizes a freeze: the frozen amount leaves the wallet.
// The available decrement already happened at freeze time and is not repeated.
func (r *WalletWriteRepository) ApplyDeduct(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallets
		SET total_frozen = total_frozen - $2,
		    updated_at = NOW()
		WHERE wallet_id = $1 AND total_frozen >= $2
		RETURNING total_frozen
	`

	var frozen decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &frozen, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", frozen,
		"error", err,
	)

	return err
}

// ApplyRelease moves amount back from frozen to available.
func (r *WalletWriteRepository) ApplyRelease(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallets
		SET total_available = total_available + $2,
		    total_frozen = total_frozen - $2,
		    updated_at = NOW()
		WHERE wallet_id = $1 AND total_frozen >= $2
		RETURNING total_available
	`

	var available decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &available, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", available,
		"error", err,
	)

	return err
}

// AddAvailable credits the wallet's available balance (top-ups and refunds).
func (r *WalletWriteRepository) AddAvailable(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallets
		SET total_available = total_available + $2,
		    updated_at = NOW()
		WHERE wallet_id = $1
		RETURNING total_available
	`

	var available decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &available, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", available,
		"error", err,
	)

	return err
}

// SetStatus flips the wallet between active and locked.
func (r *WalletWriteRepository) SetStatus(ctx context.Context, walletID uuid.UUID, status string) error {
	const query = `
		UPDATE wallets
		SET status = $2, updated_at = NOW()
		WHERE wallet_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, walletID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, status},
		"error", err,
	)

	return err
}
