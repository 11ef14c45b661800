package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// PaymentIntentWriteRepository persists split-payment saga state.
type PaymentIntentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPaymentIntentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PaymentIntentWriteRepository {
	return &PaymentIntentWriteRepository{db: db, txGetter: txGetter}
}

func (r *PaymentIntentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new payment intent.
func (r *PaymentIntentWriteRepository) Save(ctx context.Context, intent *models.PaymentIntentDB) error {
	const query = `
		INSERT INTO payment_intents (intent_id, user_id, order_id, currency, total_amount, wallet_amount,
		                             gateway_amount, frozen_amount, freeze_transaction_id, channel, status,
		                             checkout_url, gateway_charge_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		intent.IntentID, intent.UserID, intent.OrderID, intent.Currency,
		intent.TotalAmount, intent.WalletAmount, intent.GatewayAmount,
		intent.FrozenAmount, intent.FreezeTxnID,
		intent.Channel, intent.Status, intent.CheckoutURL, intent.GatewayChargeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intent.IntentID, intent.OrderID, intent.TotalAmount, intent.Status},
		"error", err,
	)

	return err
}

// SetStatus advances the saga state of an intent.
func (r *PaymentIntentWriteRepository) SetStatus(ctx context.Context, intentID uuid.UUID, status string) error {
	const query = `
		UPDATE payment_intents
		SET status = $2, updated_at = NOW()
		WHERE intent_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, intentID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, status},
		"error", err,
	)

	return err
}

// SetGatewayResult records what the gateway answered for the remainder leg.
func (r *PaymentIntentWriteRepository) SetGatewayResult(ctx context.Context, intentID uuid.UUID, checkoutURL, gatewayChargeID string) error {
	const query = `
		UPDATE payment_intents
		SET checkout_url = $2, gateway_charge_id = $3, updated_at = NOW()
		WHERE intent_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, intentID, checkoutURL, gatewayChargeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, checkoutURL, gatewayChargeID},
		"error", err,
	)

	return err
}

// PaymentIntentReadRepository loads split-payment saga state.
type PaymentIntentReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPaymentIntentReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PaymentIntentReadRepository {
	return &PaymentIntentReadRepository{db: db, txGetter: txGetter}
}

func (r *PaymentIntentReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetForUpdate loads one intent under an exclusive row lock. Returns
// sql.ErrNoRows when the intent does not exist.
func (r *PaymentIntentReadRepository) GetForUpdate(ctx context.Context, intentID uuid.UUID) (*models.PaymentIntentDB, error) {
	const query = `
		SELECT intent_id, user_id, order_id, currency, total_amount, wallet_amount,
		       gateway_amount, frozen_amount, freeze_transaction_id, channel, status,
		       checkout_url, gateway_charge_id, created_at, updated_at
		FROM payment_intents
		WHERE intent_id = $1
		FOR UPDATE
	`

	var intent models.PaymentIntentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &intent, query, intentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &intent, nil
}
