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
)

func newLot(remaining int64, acquiredAt time.Time) models.WalletLotDB {
	amount := decimal.NewFromInt(remaining)
	return models.WalletLotDB{
		LotID:      uuid.New(),
		UserID:     uuid.New(),
		Source:     models.LotSourceTopUp,
		Amount:     amount,
		Remaining:  amount,
		BaseValue:  amount,
		BonusValue: decimal.Zero,
		Currency:   models.USD,
		AcquiredAt: acquiredAt,
		ExpiresAt:  acquiredAt.Add(365 * 24 * time.Hour),
	}
}

func TestAllocate_OldestFirst(t *testing.T) {
	now := time.Now()
	first := newLot(60, now.Add(-2*time.Hour))
	second := newLot(50, now.Add(-time.Hour))

	svc := NewLotLedgerService(nil)

	allocations, covered := svc.Allocate([]models.WalletLotDB{first, second}, decimal.NewFromInt(80))

	assert.True(t, covered.Equal(decimal.NewFromInt(80)))
	assert.Len(t, allocations, 2)
	assert.Equal(t, first.LotID, allocations[0].LotID)
	assert.True(t, allocations[0].Amount.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, second.LotID, allocations[1].LotID)
	assert.True(t, allocations[1].Amount.Equal(decimal.NewFromInt(20)))
}

func TestAllocate_StopsWhenCovered(t *testing.T) {
	now := time.Now()
	lots := []models.WalletLotDB{newLot(100, now.Add(-time.Hour)), newLot(100, now)}

	svc := NewLotLedgerService(nil)

	allocations, covered := svc.Allocate(lots, decimal.NewFromInt(40))

	assert.True(t, covered.Equal(decimal.NewFromInt(40)))
	assert.Len(t, allocations, 1)
	assert.True(t, allocations[0].Amount.Equal(decimal.NewFromInt(40)))
}

func TestAllocate_PartialCoverage(t *testing.T) {
	now := time.Now()
	lots := []models.WalletLotDB{newLot(30, now)}

	svc := NewLotLedgerService(nil)

	allocations, covered := svc.Allocate(lots, decimal.NewFromInt(100))

	assert.True(t, covered.Equal(decimal.NewFromInt(30)))
	assert.Len(t, allocations, 1)
	assert.True(t, allocations[0].Amount.Equal(decimal.NewFromInt(30)))
}

func TestAllocate_NoLots(t *testing.T) {
	svc := NewLotLedgerService(nil)

	allocations, covered := svc.Allocate(nil, decimal.NewFromInt(10))

	assert.True(t, covered.IsZero())
	assert.Empty(t, allocations)
}

func TestAllocate_SnapshotCarriesLotValues(t *testing.T) {
	now := time.Now()
	lot := newLot(50, now)
	lot.BaseValue = decimal.NewFromInt(40)
	lot.BonusValue = decimal.NewFromInt(10)
	lot.Source = models.LotSourcePromo

	svc := NewLotLedgerService(nil)

	allocations, _ := svc.Allocate([]models.WalletLotDB{lot}, decimal.NewFromInt(25))

	assert.Equal(t, models.LotSourcePromo, allocations[0].Source)
	assert.True(t, allocations[0].BaseValue.Equal(decimal.NewFromInt(40)))
	assert.True(t, allocations[0].BonusValue.Equal(decimal.NewFromInt(10)))
}

func TestSelectEligibleLots_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := []models.WalletLotDB{newLot(10, time.Now())}

	reader := NewMockLotReader(ctrl)
	reader.EXPECT().SelectEligibleForUpdate(gomock.Any(), userID).Return(want, nil)

	svc := NewLotLedgerService(reader)

	got, err := svc.SelectEligibleLots(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
