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

// LotReadRepository handles wallet lot read operations.
type LotReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLotReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LotReadRepository {
	return &LotReadRepository{db: db, txGetter: txGetter}
}

func (r *LotReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SelectEligibleForUpdate returns unlocked, unexhausted, unexpired lots with
// remaining value, oldest acquired first, each under an exclusive row lock.
// The result must be re-queried per freeze, never cached: concurrent freezes
// mutate remaining.
func (r *LotReadRepository) SelectEligibleForUpdate(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error) {
	const query = `
		SELECT lot_id, user_id, source, amount, remaining, base_value, bonus_value,
		       currency, locked, dispute_locked, exhausted, acquired_at, expires_at, created_at, updated_at
		FROM wallet_lots
		WHERE user_id = $1
		  AND NOT locked
		  AND NOT dispute_locked
		  AND NOT exhausted
		  AND remaining > 0
		  AND expires_at > NOW()
		ORDER BY acquired_at ASC
		FOR UPDATE
	`

	var lots []models.WalletLotDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &lots, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(lots),
		"error", err,
	)

	return lots, err
}

// GetByID returns a single lot.
func (r *LotReadRepository) GetByID(ctx context.Context, lotID uuid.UUID) (*models.WalletLotDB, error) {
	const query = `
		SELECT lot_id, user_id, source, amount, remaining, base_value, bonus_value,
		       currency, locked, dispute_locked, exhausted, acquired_at, expires_at, created_at, updated_at
		FROM wallet_lots
		WHERE lot_id = $1
	`

	var lot models.WalletLotDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &lot, query, lotID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &lot, nil
}

// ListByUserID returns all of the user's lots, oldest first.
func (r *LotReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error) {
	const query = `
		SELECT lot_id, user_id, source, amount, remaining, base_value, bonus_value,
		       currency, locked, dispute_locked, exhausted, acquired_at, expires_at, created_at, updated_at
		FROM wallet_lots
		WHERE user_id = $1
		ORDER BY acquired_at ASC
	`

	var lots []models.WalletLotDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &lots, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(lots),
		"error", err,
	)

	return lots, err
}

// LotWriteRepository handles wallet lot write operations.
type LotWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLotWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LotWriteRepository {
	return &LotWriteRepository{db: db, txGetter: txGetter}
}

func (r *LotWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new lot.
func (r *LotWriteRepository) Save(ctx context.Context, lot *models.WalletLotDB) error {
	const query = `
		INSERT INTO wallet_lots (lot_id, user_id, source, amount, remaining, base_value, bonus_value,
		                         currency, locked, dispute_locked, exhausted, acquired_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, FALSE, FALSE, $9, $10, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		lot.LotID, lot.UserID, lot.Source, lot.Amount, lot.Remaining,
		lot.BaseValue, lot.BonusValue, lot.Currency, lot.AcquiredAt, lot.ExpiresAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lot.LotID, lot.UserID, lot.Source, lot.Amount},
		"error", err,
	)

	return err
}

// DecrementRemaining reserves value from a lot. Fails with sql.ErrNoRows when
// the lot no longer has enough remaining, which means the caller raced
// another freeze.
func (r *LotWriteRepository) DecrementRemaining(ctx context.Context, lotID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallet_lots
		SET remaining = remaining - $2, updated_at = NOW()
		WHERE lot_id = $1 AND remaining >= $2
		RETURNING remaining
	`

	var remaining decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &remaining, query, lotID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID, amount},
		"result", remaining,
		"error", err,
	)

	return err
}

// RestoreRemaining credits reserved value back to a lot and clears the
// exhausted flag: after the credit the remaining balance is positive again.
func (r *LotWriteRepository) RestoreRemaining(ctx context.Context, lotID uuid.UUID, amount decimal.Decimal) error {
	const query = `
		UPDATE wallet_lots
		SET remaining = remaining + $2, exhausted = FALSE, updated_at = NOW()
		WHERE lot_id = $1
		RETURNING remaining
	`

	var remaining decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &remaining, query, lotID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID, amount},
		"result", remaining,
		"error", err,
	)

	return err
}

// MarkExhaustedIfDepleted flags a lot whose remaining hit zero after a
// completed deduction. Lots with remaining value are left untouched.
func (r *LotWriteRepository) MarkExhaustedIfDepleted(ctx context.Context, lotID uuid.UUID) error {
	const query = `
		UPDATE wallet_lots
		SET exhausted = TRUE, updated_at = NOW()
		WHERE lot_id = $1 AND remaining = 0
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, lotID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID},
		"error", err,
	)

	return err
}

// SetLocked places or lifts an account hold on a single lot.
func (r *LotWriteRepository) SetLocked(ctx context.Context, lotID uuid.UUID, locked bool) error {
	const query = `
		UPDATE wallet_lots
		SET locked = $2, updated_at = NOW()
		WHERE lot_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, lotID, locked)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID, locked},
		"error", err,
	)

	return err
}

// SetDisputeLocked places or lifts a dispute escrow hold on a single lot.
// Escrow holds live on their own column so lifting an account hold never
// releases a disputed lot.
func (r *LotWriteRepository) SetDisputeLocked(ctx context.Context, lotID uuid.UUID, locked bool) error {
	const query = `
		UPDATE wallet_lots
		SET dispute_locked = $2, updated_at = NOW()
		WHERE lot_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, lotID, locked)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{lotID, locked},
		"error", err,
	)

	return err
}

// SetLockedByUser cascades a wallet-wide account hold across all of the
// user's lots. Dispute escrow holds are untouched.
func (r *LotWriteRepository) SetLockedByUser(ctx context.Context, userID uuid.UUID, locked bool) error {
	const query = `
		UPDATE wallet_lots
		SET locked = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, locked)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, locked},
		"error", err,
	)

	return err
}
