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

// FreezeReadRepository handles freeze reservation read operations.
type FreezeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFreezeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FreezeReadRepository {
	return &FreezeReadRepository{db: db, txGetter: txGetter}
}

func (r *FreezeReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListFrozenByOrder returns all still-frozen reservations for an order under
// row locks, oldest first. Used by release-by-order when the caller has lost
// the freeze transaction handle.
func (r *FreezeReadRepository) ListFrozenByOrder(ctx context.Context, userID uuid.UUID, orderID string) ([]models.WalletLotFreezeDB, error) {
	const query = `
		SELECT freeze_id, lot_id, user_id, order_id, amount, status, expires_at, created_at, updated_at
		FROM wallet_lot_freezes
		WHERE user_id = $1 AND order_id = $2 AND status = 'frozen'
		ORDER BY created_at ASC
		FOR UPDATE
	`

	var freezes []models.WalletLotFreezeDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &freezes, query, userID, orderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, orderID},
		"result", len(freezes),
		"error", err,
	)

	return freezes, err
}

// ListExpiredFrozen returns abandoned reservations: still frozen but past
// their deadline. Fed to the expiry sweep in batches.
func (r *FreezeReadRepository) ListExpiredFrozen(ctx context.Context, now time.Time, limit int) ([]models.WalletLotFreezeDB, error) {
	const query = `
		SELECT freeze_id, lot_id, user_id, order_id, amount, status, expires_at, created_at, updated_at
		FROM wallet_lot_freezes
		WHERE status = 'frozen' AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2
	`

	var freezes []models.WalletLotFreezeDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &freezes, query, now, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now, limit},
		"result", len(freezes),
		"error", err,
	)

	return freezes, err
}

// FreezeWriteRepository handles freeze reservation write operations.
type FreezeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFreezeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FreezeWriteRepository {
	return &FreezeWriteRepository{db: db, txGetter: txGetter}
}

func (r *FreezeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new freeze reservation row.
func (r *FreezeWriteRepository) Save(ctx context.Context, freeze *models.WalletLotFreezeDB) error {
	const query = `
		INSERT INTO wallet_lot_freezes (freeze_id, lot_id, user_id, order_id, amount, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		freeze.FreezeID, freeze.LotID, freeze.UserID, freeze.OrderID,
		freeze.Amount, freeze.Status, freeze.ExpiresAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{freeze.FreezeID, freeze.LotID, freeze.OrderID, freeze.Amount},
		"error", err,
	)

	return err
}

// SetStatus moves a reservation from frozen into one of its terminal states.
// Fails with sql.ErrNoRows when the reservation already left the frozen
// state, which keeps terminal transitions from being applied twice.
func (r *FreezeWriteRepository) SetStatus(ctx context.Context, freezeID uuid.UUID, status string) error {
	const query = `
		UPDATE wallet_lot_freezes
		SET status = $2, updated_at = NOW()
		WHERE freeze_id = $1 AND status = 'frozen'
		RETURNING freeze_id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, freezeID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{freezeID, status},
		"error", err,
	)

	return err
}
