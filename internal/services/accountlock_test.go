package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockMocks struct {
	runner   *MockTxRunner
	wallets  *MockWalletReader
	walletsW *MockWalletWriter
	lotsR    *MockLotReader
	lotsW    *MockLotWriter
	locks    *MockLockReader
	locksW   *MockLockWriter
	audit    *MockAuditor
}

func newAccountLockService(ctrl *gomock.Controller) (*AccountLockService, lockMocks) {
	m := lockMocks{
		runner:   NewMockTxRunner(ctrl),
		wallets:  NewMockWalletReader(ctrl),
		walletsW: NewMockWalletWriter(ctrl),
		lotsR:    NewMockLotReader(ctrl),
		lotsW:    NewMockLotWriter(ctrl),
		locks:    NewMockLockReader(ctrl),
		locksW:   NewMockLockWriter(ctrl),
		audit:    NewMockAuditor(ctrl),
	}
	passthroughTx(m.runner)
	svc := NewAccountLockService(
		m.runner, m.wallets, m.walletsW, m.lotsR, m.lotsW,
		m.locks, m.locksW, m.audit,
	)
	return svc, m
}

func operatorActor() models.Actor {
	return models.Actor{Type: models.ActorTypeOperator, ID: uuid.New()}
}

func TestFreezeWallet_LocksWalletAndLots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	userID := uuid.New()
	actor := operatorActor()
	wallet := activeWallet(userID, 100)

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.walletsW.EXPECT().SetStatus(gomock.Any(), wallet.WalletID, models.WalletStatusLocked).Return(nil)
	m.lotsW.EXPECT().SetLockedByUser(gomock.Any(), userID, true).Return(nil)

	var saved *models.WalletLockDB
	m.locksW.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, lock *models.WalletLockDB) error {
			saved = lock
			return nil
		},
	)
	m.audit.EXPECT().Record(gomock.Any(), actor, "wallet.lock", "wallet", wallet.WalletID.String(), gomock.Any()).Return(nil)

	lock, err := svc.FreezeWallet(context.Background(), actor, userID, "fraud_suspected", "chargeback pattern")
	require.NoError(t, err)

	assert.Equal(t, wallet.WalletID, lock.WalletID)
	assert.Equal(t, actor.ID, lock.LockedBy)
	assert.Equal(t, "fraud_suspected", lock.Reason)
	assert.Nil(t, lock.ExpiresAt)
	require.NotNil(t, saved)
	assert.Equal(t, lock.LockID, saved.LockID)
}

func TestFreezeWallet_NoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	userID := uuid.New()

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, sql.ErrNoRows)

	_, err := svc.FreezeWallet(context.Background(), operatorActor(), userID, "fraud_suspected", "")
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestTemporaryFreezeWallet_SetsExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	userID := uuid.New()
	wallet := activeWallet(userID, 100)
	expiresAt := time.Now().Add(24 * time.Hour)

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.walletsW.EXPECT().SetStatus(gomock.Any(), wallet.WalletID, models.WalletStatusLocked).Return(nil)
	m.lotsW.EXPECT().SetLockedByUser(gomock.Any(), userID, true).Return(nil)
	m.locksW.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), "wallet.lock", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	lock, err := svc.TemporaryFreezeWallet(context.Background(), operatorActor(), userID, "under_review", "", expiresAt)
	require.NoError(t, err)
	require.NotNil(t, lock.ExpiresAt)
	assert.True(t, lock.ExpiresAt.Equal(expiresAt))
}

func TestTemporaryFreezeWallet_PastExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAccountLockService(ctrl)

	_, err := svc.TemporaryFreezeWallet(context.Background(), operatorActor(), uuid.New(), "under_review", "", time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidExpiry)
}

func TestUnfreezeWallet_ResolvesActiveLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	userID := uuid.New()
	actor := operatorActor()
	wallet := activeWallet(userID, 100)
	wallet.Status = models.WalletStatusLocked

	active := []models.WalletLockDB{
		{LockID: uuid.New(), WalletID: wallet.WalletID},
		{LockID: uuid.New(), WalletID: wallet.WalletID},
	}

	m.wallets.EXPECT().GetForUpdate(gomock.Any(), userID).Return(wallet, nil)
	m.locks.EXPECT().ListActiveByWallet(gomock.Any(), wallet.WalletID).Return(active, nil)
	m.locksW.EXPECT().Resolve(gomock.Any(), active[0].LockID).Return(nil)
	m.locksW.EXPECT().Resolve(gomock.Any(), active[1].LockID).Return(nil)
	m.walletsW.EXPECT().SetStatus(gomock.Any(), wallet.WalletID, models.WalletStatusActive).Return(nil)
	m.lotsW.EXPECT().SetLockedByUser(gomock.Any(), userID, false).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, "wallet.unlock", "wallet", wallet.WalletID.String(), gomock.Any()).Return(nil)

	err := svc.UnfreezeWallet(context.Background(), actor, userID)
	assert.NoError(t, err)
}

func TestFreezeLot_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	actor := operatorActor()
	lot := newLot(50, time.Now())

	m.lotsR.EXPECT().GetByID(gomock.Any(), lot.LotID).Return(&lot, nil)
	m.lotsW.EXPECT().SetLocked(gomock.Any(), lot.LotID, true).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), actor, "lot.lock", "wallet_lot", lot.LotID.String(), gomock.Any()).Return(nil)

	err := svc.FreezeLot(context.Background(), actor, lot.LotID)
	assert.NoError(t, err)
}

func TestUnfreezeLot_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	lotID := uuid.New()

	m.lotsR.EXPECT().GetByID(gomock.Any(), lotID).Return(nil, sql.ErrNoRows)

	err := svc.UnfreezeLot(context.Background(), operatorActor(), lotID)
	assert.ErrorIs(t, err, ErrLotNotFound)
}

func TestProcessExpiredLocks_ReactivatesWhenLastLockLifts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	now := time.Now()
	userID := uuid.New()
	wallet := activeWallet(userID, 100)
	wallet.Status = models.WalletStatusLocked

	expiry := now.Add(-time.Hour)
	lock := models.WalletLockDB{LockID: uuid.New(), WalletID: wallet.WalletID, ExpiresAt: &expiry}

	m.locks.EXPECT().ListExpired(gomock.Any(), now, sweepBatchSize).Return([]models.WalletLockDB{lock}, nil)
	m.wallets.EXPECT().GetByID(gomock.Any(), wallet.WalletID).Return(wallet, nil)
	m.locksW.EXPECT().Resolve(gomock.Any(), lock.LockID).Return(nil)
	m.locks.EXPECT().ListActiveByWallet(gomock.Any(), wallet.WalletID).Return(nil, nil)
	m.walletsW.EXPECT().SetStatus(gomock.Any(), wallet.WalletID, models.WalletStatusActive).Return(nil)
	m.lotsW.EXPECT().SetLockedByUser(gomock.Any(), userID, false).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), models.SystemActor, "wallet.lock_expired", "wallet_lock", lock.LockID.String(), lock).Return(nil)

	resolved, err := svc.ProcessExpiredLocks(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
}

func TestProcessExpiredLocks_KeepsWalletLockedWhileOthersRemain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAccountLockService(ctrl)
	now := time.Now()
	userID := uuid.New()
	wallet := activeWallet(userID, 100)
	wallet.Status = models.WalletStatusLocked

	expiry := now.Add(-time.Hour)
	expired := models.WalletLockDB{LockID: uuid.New(), WalletID: wallet.WalletID, ExpiresAt: &expiry}
	remaining := models.WalletLockDB{LockID: uuid.New(), WalletID: wallet.WalletID}

	m.locks.EXPECT().ListExpired(gomock.Any(), now, sweepBatchSize).Return([]models.WalletLockDB{expired}, nil)
	m.wallets.EXPECT().GetByID(gomock.Any(), wallet.WalletID).Return(wallet, nil)
	m.locksW.EXPECT().Resolve(gomock.Any(), expired.LockID).Return(nil)
	m.locks.EXPECT().ListActiveByWallet(gomock.Any(), wallet.WalletID).Return([]models.WalletLockDB{remaining}, nil)
	m.audit.EXPECT().Record(gomock.Any(), models.SystemActor, "wallet.lock_expired", "wallet_lock", expired.LockID.String(), expired).Return(nil)

	resolved, err := svc.ProcessExpiredLocks(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
}
