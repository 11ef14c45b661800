package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topUpMocks struct {
	runner  *MockTxRunner
	wallets *MockWalletWriter
	lots    *MockLotWriter
	txns    *MockTransactionWriter
	audit   *MockAuditor
}

func newTopUpService(ctrl *gomock.Controller) (*TopUpService, topUpMocks) {
	m := topUpMocks{
		runner:  NewMockTxRunner(ctrl),
		wallets: NewMockWalletWriter(ctrl),
		lots:    NewMockLotWriter(ctrl),
		txns:    NewMockTransactionWriter(ctrl),
		audit:   NewMockAuditor(ctrl),
	}
	passthroughTx(m.runner)
	return NewTopUpService(m.runner, m.wallets, m.lots, m.txns, m.audit), m
}

func TestCredit_MintsLotAndLedgerEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTopUpService(ctrl)
	userID := uuid.New()
	actor := userActor(userID)
	wallet := activeWallet(userID, 10)
	expiresAt := time.Now().Add(180 * 24 * time.Hour)

	m.wallets.EXPECT().Create(gomock.Any(), userID, models.USD).Return(wallet, nil)

	var mintedLot *models.WalletLotDB
	m.lots.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, lot *models.WalletLotDB) error {
			mintedLot = lot
			return nil
		},
	)
	var savedTxn *models.WalletTransactionDB
	m.txns.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.WalletTransactionDB) error {
			savedTxn = txn
			return nil
		},
	)
	m.wallets.EXPECT().AddAvailable(gomock.Any(), wallet.WalletID, decOf(110)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, "wallet.top_up", "wallet", wallet.WalletID.String(), gomock.Any()).Return(nil)

	result, err := svc.Credit(context.Background(), actor, userID,
		decimal.NewFromInt(100), decimal.NewFromInt(10), models.USD, models.LotSourcePromo, "promo-42", expiresAt)
	require.NoError(t, err)

	require.NotNil(t, mintedLot)
	assert.Equal(t, models.LotSourcePromo, mintedLot.Source)
	assert.True(t, mintedLot.Amount.Equal(decimal.NewFromInt(110)))
	assert.True(t, mintedLot.Remaining.Equal(decimal.NewFromInt(110)))
	assert.True(t, mintedLot.BaseValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, mintedLot.BonusValue.Equal(decimal.NewFromInt(10)))
	assert.True(t, mintedLot.ExpiresAt.Equal(expiresAt))

	require.NotNil(t, savedTxn)
	assert.Equal(t, models.DirectionCredit, savedTxn.Direction)
	assert.Equal(t, models.TransactionTypeTopUp, savedTxn.Type)
	assert.Equal(t, models.TransactionStatusCompleted, savedTxn.Status)
	assert.Equal(t, "promo-42", savedTxn.RefID)

	assert.True(t, result.Wallet.TotalAvailable.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, mintedLot.LotID, result.Lot.LotID)
}

func TestCredit_InvalidAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTopUpService(ctrl)
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	_, err := svc.Credit(context.Background(), userActor(userID), userID,
		decimal.Zero, decimal.Zero, models.USD, models.LotSourceTopUp, "", expiresAt)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Credit(context.Background(), userActor(userID), userID,
		decimal.NewFromInt(10), decimal.NewFromInt(-1), models.USD, models.LotSourceTopUp, "", expiresAt)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCredit_UnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTopUpService(ctrl)
	userID := uuid.New()

	_, err := svc.Credit(context.Background(), userActor(userID), userID,
		decimal.NewFromInt(10), decimal.Zero, "XXX", models.LotSourceTopUp, "", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCredit_PastExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTopUpService(ctrl)
	userID := uuid.New()

	_, err := svc.Credit(context.Background(), userActor(userID), userID,
		decimal.NewFromInt(10), decimal.Zero, models.USD, models.LotSourceTopUp, "", time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidExpiry)
}

func TestCredit_LockedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTopUpService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 0)
	wallet.Status = models.WalletStatusLocked

	m.wallets.EXPECT().Create(gomock.Any(), userID, models.USD).Return(wallet, nil)

	_, err := svc.Credit(context.Background(), userActor(userID), userID,
		decimal.NewFromInt(10), decimal.Zero, models.USD, models.LotSourceTopUp, "", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrWalletLocked)
}
