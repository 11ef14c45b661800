package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decEq matches decimal arguments by value. reflect.DeepEqual distinguishes
// equal decimals with different exponents, so gomock.Eq is unusable here.
type decEq struct {
	want decimal.Decimal
}

func (m decEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decEq) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

func decOf(v int64) gomock.Matcher {
	return decEq{want: decimal.NewFromInt(v)}
}

// passthroughTx makes the runner execute the transaction body directly.
func passthroughTx(runner *MockTxRunner) {
	runner.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

type freezeMocks struct {
	runner    *MockTxRunner
	wallets   *MockWalletReader
	walletsW  *MockWalletWriter
	allocator *MockLotAllocator
	lotsW     *MockLotWriter
	freezes   *MockFreezeReader
	freezesW  *MockFreezeWriter
	txns      *MockTransactionReader
	txnsW     *MockTransactionWriter
	audit     *MockAuditor
}

func newFreezeService(ctrl *gomock.Controller) (*FreezeService, freezeMocks) {
	m := freezeMocks{
		runner:    NewMockTxRunner(ctrl),
		wallets:   NewMockWalletReader(ctrl),
		walletsW:  NewMockWalletWriter(ctrl),
		allocator: NewMockLotAllocator(ctrl),
		lotsW:     NewMockLotWriter(ctrl),
		freezes:   NewMockFreezeReader(ctrl),
		freezesW:  NewMockFreezeWriter(ctrl),
		txns:      NewMockTransactionReader(ctrl),
		txnsW:     NewMockTransactionWriter(ctrl),
		audit:     NewMockAuditor(ctrl),
	}
	passthroughTx(m.runner)
	svc := NewFreezeService(
		m.runner, m.wallets, m.walletsW, m.allocator, m.lotsW,
		m.freezes, m.freezesW, m.txns, m.txnsW, m.audit,
	)
	return svc, m
}

func activeWallet(userID uuid.UUID, available int64) *models.WalletDB {
	return &models.WalletDB{
		WalletID:       uuid.New(),
		UserID:         userID,
		Currency:       models.USD,
		TotalAvailable: decimal.NewFromInt(available),
		TotalFrozen:    decimal.Zero,
		Status:         models.WalletStatusActive,
	}
}

func userActor(userID uuid.UUID) models.Actor {
	return models.Actor{Type: models.ActorTypeUser, ID: userID}
}

func TestFreeze_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newFreezeService(ctrl)
	userID := uuid.New()

	_, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = svc.Freeze(context.Background(), userActor(userID), userID, decimal.Zero, "order-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(-5), "order-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFreeze_NoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, sql.ErrNoRows)

	result, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(75), "order-1")
	require.NoError(t, err)
	assert.True(t, result.FrozenAmount.IsZero())
	assert.True(t, result.RemainingForGateway.Equal(decimal.NewFromInt(75)))
	assert.Nil(t, result.Transaction)
}

func TestFreeze_WalletLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()

	wallet := activeWallet(userID, 100)
	wallet.Status = models.WalletStatusLocked
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)

	_, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(10), "order-1")
	assert.ErrorIs(t, err, ErrWalletLocked)
}

func TestFreeze_NoSpendableBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 0), nil)

	result, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(40), "order-1")
	require.NoError(t, err)
	assert.True(t, result.FrozenAmount.IsZero())
	assert.True(t, result.RemainingForGateway.Equal(decimal.NewFromInt(40)))
}

func TestFreeze_FullCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 100)

	firstLot := newLot(60, time.Now().Add(-2*time.Hour))
	secondLot := newLot(50, time.Now().Add(-time.Hour))
	lots := []models.WalletLotDB{firstLot, secondLot}

	allocations := models.LotAllocations{
		{LotID: firstLot.LotID, Amount: decimal.NewFromInt(60)},
		{LotID: secondLot.LotID, Amount: decimal.NewFromInt(20)},
	}

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.allocator.EXPECT().SelectEligibleLots(gomock.Any(), userID).Return(lots, nil)
	m.allocator.EXPECT().Allocate(lots, decOf(80)).Return(allocations, decimal.NewFromInt(80))

	var savedFreezes []*models.WalletLotFreezeDB
	m.freezesW.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, freeze *models.WalletLotFreezeDB) error {
			savedFreezes = append(savedFreezes, freeze)
			return nil
		},
	).Times(2)
	m.lotsW.EXPECT().DecrementRemaining(gomock.Any(), firstLot.LotID, decOf(60)).Return(nil)
	m.lotsW.EXPECT().DecrementRemaining(gomock.Any(), secondLot.LotID, decOf(20)).Return(nil)

	var savedTxn *models.WalletTransactionDB
	m.txnsW.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.WalletTransactionDB) error {
			savedTxn = txn
			return nil
		},
	)
	m.walletsW.EXPECT().ApplyFreeze(gomock.Any(), wallet.WalletID, decOf(80)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), userActor(userID), "wallet.freeze", "wallet_transaction", gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1")
	require.NoError(t, err)

	assert.True(t, result.FrozenAmount.Equal(decimal.NewFromInt(80)))
	assert.True(t, result.RemainingForGateway.IsZero())
	require.NotNil(t, result.Transaction)
	assert.Equal(t, models.TransactionStatusPending, result.Transaction.Status)
	assert.Equal(t, models.DirectionDebit, result.Transaction.Direction)
	assert.Equal(t, "order-1", result.Transaction.RefID)

	require.NotNil(t, savedTxn)
	assert.True(t, savedTxn.Amount.Equal(decimal.NewFromInt(80)))

	require.Len(t, savedFreezes, 2)
	for i, freeze := range savedFreezes {
		assert.Equal(t, models.FreezeStatusFrozen, freeze.Status)
		assert.Equal(t, "order-1", freeze.OrderID)
		assert.Equal(t, freeze.FreezeID, result.Allocations[i].FreezeID)
		assert.WithinDuration(t, time.Now().Add(models.FreezeTTL), freeze.ExpiresAt, time.Minute)
	}
}

func TestFreeze_PartialCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 100)

	lot := newLot(100, time.Now().Add(-time.Hour))
	allocations := models.LotAllocations{{LotID: lot.LotID, Amount: decimal.NewFromInt(100)}}

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.allocator.EXPECT().SelectEligibleLots(gomock.Any(), userID).Return([]models.WalletLotDB{lot}, nil)
	// The freeze is capped at the available balance, not the order amount.
	m.allocator.EXPECT().Allocate(gomock.Any(), decOf(100)).Return(allocations, decimal.NewFromInt(100))
	m.freezesW.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.lotsW.EXPECT().DecrementRemaining(gomock.Any(), lot.LotID, decOf(100)).Return(nil)
	m.txnsW.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.walletsW.EXPECT().ApplyFreeze(gomock.Any(), wallet.WalletID, decOf(100)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), "wallet.freeze", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(150), "order-2")
	require.NoError(t, err)
	assert.True(t, result.FrozenAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.RemainingForGateway.Equal(decimal.NewFromInt(50)))
}

func TestFreeze_SaveErrorRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 100)

	lot := newLot(50, time.Now())
	allocations := models.LotAllocations{{LotID: lot.LotID, Amount: decimal.NewFromInt(50)}}

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.allocator.EXPECT().SelectEligibleLots(gomock.Any(), userID).Return([]models.WalletLotDB{lot}, nil)
	m.allocator.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(allocations, decimal.NewFromInt(50))
	m.freezesW.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := svc.Freeze(context.Background(), userActor(userID), userID, decimal.NewFromInt(50), "order-3")
	assert.Error(t, err)
}

func pendingFreezeTxn(userID uuid.UUID, amount int64, orderID string) *models.WalletTransactionDB {
	return &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Direction:     models.DirectionDebit,
		Amount:        decimal.NewFromInt(amount),
		Currency:      models.USD,
		Type:          models.TransactionTypePayment,
		Status:        models.TransactionStatusPending,
		RefType:       "order",
		RefID:         orderID,
		LotAllocations: models.LotAllocations{
			{LotID: uuid.New(), FreezeID: uuid.New(), Amount: decimal.NewFromInt(amount)},
		},
	}
}

func TestDeduct_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 20)
	txn := pendingFreezeTxn(userID, 80, "order-1")
	alloc := txn.LotAllocations[0]

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), txn.TransactionID).Return(txn, nil)
	m.freezesW.EXPECT().SetStatus(gomock.Any(), alloc.FreezeID, models.FreezeStatusConsumed).Return(nil)
	m.lotsW.EXPECT().MarkExhaustedIfDepleted(gomock.Any(), alloc.LotID).Return(nil)
	m.txnsW.EXPECT().SetStatus(gomock.Any(), txn.TransactionID, models.TransactionStatusCompleted).Return(nil)
	m.walletsW.EXPECT().ApplyDeduct(gomock.Any(), wallet.WalletID, decOf(80)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), userActor(userID), "wallet.deduct", "wallet_transaction", txn.TransactionID.String(), txn).Return(nil)

	result, err := svc.Deduct(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1", txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, txn.TransactionID, result.TransactionID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(80)))
}

func TestDeduct_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	transactionID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 20), nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), transactionID).Return(nil, sql.ErrNoRows)

	_, err := svc.Deduct(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1", transactionID)
	assert.ErrorIs(t, err, ErrInvalidFreezeTransaction)
}

func TestDeduct_WrongOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	txn := pendingFreezeTxn(uuid.New(), 80, "order-1")

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 20), nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), txn.TransactionID).Return(txn, nil)

	_, err := svc.Deduct(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1", txn.TransactionID)
	assert.ErrorIs(t, err, ErrInvalidFreezeTransaction)
}

func TestDeduct_AmountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	txn := pendingFreezeTxn(userID, 80, "order-1")

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 20), nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), txn.TransactionID).Return(txn, nil)

	_, err := svc.Deduct(context.Background(), userActor(userID), userID, decimal.NewFromInt(79), "order-1", txn.TransactionID)
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestRelease_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 20)
	txn := pendingFreezeTxn(userID, 80, "order-1")
	alloc := txn.LotAllocations[0]

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), txn.TransactionID).Return(txn, nil)
	m.freezesW.EXPECT().SetStatus(gomock.Any(), alloc.FreezeID, models.FreezeStatusReleased).Return(nil)
	m.lotsW.EXPECT().RestoreRemaining(gomock.Any(), alloc.LotID, decOf(80)).Return(nil)
	m.txnsW.EXPECT().SetStatus(gomock.Any(), txn.TransactionID, models.TransactionStatusFailed).Return(nil)
	m.walletsW.EXPECT().ApplyRelease(gomock.Any(), wallet.WalletID, decOf(80)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), userActor(userID), "wallet.release", "wallet_transaction", txn.TransactionID.String(), txn).Return(nil)

	result, err := svc.Release(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1", txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, txn.TransactionID, result.TransactionID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(80)))
}

func TestRelease_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	transactionID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 20), nil)
	m.txns.EXPECT().GetPendingForUpdate(gomock.Any(), transactionID).Return(nil, sql.ErrNoRows)

	_, err := svc.Release(context.Background(), userActor(userID), userID, decimal.NewFromInt(80), "order-1", transactionID)
	assert.ErrorIs(t, err, ErrInvalidFreezeTransaction)
}

func TestReleaseByOrder_ReleasesAllFrozen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 20)

	freezes := []models.WalletLotFreezeDB{
		{FreezeID: uuid.New(), LotID: uuid.New(), UserID: userID, OrderID: "order-1", Amount: decimal.NewFromInt(60), Status: models.FreezeStatusFrozen},
		{FreezeID: uuid.New(), LotID: uuid.New(), UserID: userID, OrderID: "order-1", Amount: decimal.NewFromInt(20), Status: models.FreezeStatusFrozen},
	}

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.freezes.EXPECT().ListFrozenByOrder(gomock.Any(), userID, "order-1").Return(freezes, nil)
	for _, freeze := range freezes {
		m.freezesW.EXPECT().SetStatus(gomock.Any(), freeze.FreezeID, models.FreezeStatusReleased).Return(nil)
		m.lotsW.EXPECT().RestoreRemaining(gomock.Any(), freeze.LotID, decEq{want: freeze.Amount}).Return(nil)
	}
	m.txnsW.EXPECT().FailPendingByOrder(gomock.Any(), userID, "order-1").Return(nil)
	m.walletsW.EXPECT().ApplyRelease(gomock.Any(), wallet.WalletID, decOf(80)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), userActor(userID), "wallet.release_by_order", "order", "order-1", gomock.Any()).Return(nil)

	result, err := svc.ReleaseByOrder(context.Background(), userActor(userID), userID, "order-1")
	require.NoError(t, err)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(80)))
}

func TestReleaseByOrder_NothingFrozen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	userID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(activeWallet(userID, 20), nil)
	m.freezes.EXPECT().ListFrozenByOrder(gomock.Any(), userID, "order-1").Return(nil, nil)

	result, err := svc.ReleaseByOrder(context.Background(), userActor(userID), userID, "order-1")
	require.NoError(t, err)
	assert.True(t, result.Amount.IsZero())
}

func TestProcessExpiredFreezes_SkipsConcurrentlySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFreezeService(ctrl)
	now := time.Now()

	userID := uuid.New()
	wallet := activeWallet(userID, 20)
	expired := []models.WalletLotFreezeDB{
		{FreezeID: uuid.New(), LotID: uuid.New(), UserID: userID, OrderID: "order-1", Amount: decimal.NewFromInt(30), Status: models.FreezeStatusFrozen},
		{FreezeID: uuid.New(), LotID: uuid.New(), UserID: userID, OrderID: "order-2", Amount: decimal.NewFromInt(10), Status: models.FreezeStatusFrozen},
	}

	m.freezes.EXPECT().ListExpiredFrozen(gomock.Any(), now, sweepBatchSize).Return(expired, nil)
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil).Times(2)

	// The first reservation releases normally.
	m.freezesW.EXPECT().SetStatus(gomock.Any(), expired[0].FreezeID, models.FreezeStatusReleased).Return(nil)
	m.lotsW.EXPECT().RestoreRemaining(gomock.Any(), expired[0].LotID, decOf(30)).Return(nil)
	m.txnsW.EXPECT().FailPendingByOrder(gomock.Any(), userID, "order-1").Return(nil)
	m.walletsW.EXPECT().ApplyRelease(gomock.Any(), wallet.WalletID, decOf(30)).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), models.SystemActor, "wallet.freeze_expired", "wallet_lot_freeze", expired[0].FreezeID.String(), expired[0]).Return(nil)

	// The second one was deducted between the listing and the sweep.
	m.freezesW.EXPECT().SetStatus(gomock.Any(), expired[1].FreezeID, models.FreezeStatusReleased).Return(sql.ErrNoRows)

	released, err := svc.ProcessExpiredFreezes(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, released)
}
