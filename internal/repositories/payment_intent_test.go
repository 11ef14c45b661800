package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	logger.Initialize("error")

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestPaymentIntentSave(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentWriteRepository(db, nil)

	intent := &models.PaymentIntentDB{
		IntentID:      uuid.New(),
		UserID:        uuid.New(),
		OrderID:       "order-1",
		Currency:      models.USD,
		TotalAmount:   decimal.NewFromInt(100),
		WalletAmount:  decimal.NewFromInt(60),
		GatewayAmount: decimal.NewFromInt(40),
		FrozenAmount:  decimal.NewFromInt(60),
		FreezeTxnID:   uuid.New(),
		Channel:       models.PaymentChannelSplit,
		Status:        models.IntentStatusPending,
	}

	mock.ExpectExec(`INSERT INTO payment_intents`).
		WithArgs(intent.IntentID, intent.UserID, intent.OrderID, intent.Currency,
			intent.TotalAmount, intent.WalletAmount, intent.GatewayAmount,
			intent.FrozenAmount, intent.FreezeTxnID,
			intent.Channel, intent.Status, intent.CheckoutURL, intent.GatewayChargeID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), intent)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentIntentSetStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentWriteRepository(db, nil)

	intentID := uuid.New()

	mock.ExpectExec(`UPDATE payment_intents`).
		WithArgs(intentID, models.IntentStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetStatus(context.Background(), intentID, models.IntentStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentIntentSetGatewayResult(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentWriteRepository(db, nil)

	intentID := uuid.New()

	mock.ExpectExec(`UPDATE payment_intents`).
		WithArgs(intentID, "https://gateway.example/pay/abc", "ch_123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetGatewayResult(context.Background(), intentID, "https://gateway.example/pay/abc", "ch_123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentIntentGetForUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentReadRepository(db, nil)

	intentID := uuid.New()
	userID := uuid.New()
	freezeTxnID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"intent_id", "user_id", "order_id", "currency", "total_amount", "wallet_amount",
		"gateway_amount", "frozen_amount", "freeze_transaction_id", "channel", "status",
		"checkout_url", "gateway_charge_id", "created_at", "updated_at",
	}).AddRow(
		intentID, userID, "order-1", models.USD, "100", "60",
		"40", "60", freezeTxnID, models.PaymentChannelSplit, models.IntentStatusRequiresGateway,
		"https://gateway.example/pay/abc", "", now, now,
	)

	mock.ExpectQuery(`(?s)SELECT.+FROM payment_intents.+FOR UPDATE`).
		WithArgs(intentID).
		WillReturnRows(rows)

	intent, err := repo.GetForUpdate(context.Background(), intentID)
	require.NoError(t, err)
	assert.Equal(t, userID, intent.UserID)
	assert.Equal(t, "order-1", intent.OrderID)
	assert.Equal(t, models.IntentStatusRequiresGateway, intent.Status)
	assert.True(t, intent.FrozenAmount.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, freezeTxnID, intent.FreezeTxnID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentIntentGetForUpdate_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentReadRepository(db, nil)

	intentID := uuid.New()

	mock.ExpectQuery(`(?s)SELECT.+FROM payment_intents.+FOR UPDATE`).
		WithArgs(intentID).
		WillReturnError(sql.ErrNoRows)

	intent, err := repo.GetForUpdate(context.Background(), intentID)
	assert.Nil(t, intent)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentIntentSaveError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentIntentWriteRepository(db, nil)

	dbErr := errors.New("connection refused")
	mock.ExpectExec(`INSERT INTO payment_intents`).WillReturnError(dbErr)

	err := repo.Save(context.Background(), &models.PaymentIntentDB{IntentID: uuid.New()})
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
