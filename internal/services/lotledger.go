package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// LotLedgerService owns lot selection and allocation arithmetic.
// It mutates nothing itself; the freeze service applies the plan it returns.
type LotLedgerService struct {
	lots LotReader
}

// NewLotLedgerService creates a new LotLedgerService.
func NewLotLedgerService(lots LotReader) *LotLedgerService {
	return &LotLedgerService{lots: lots}
}

// SelectEligibleLots returns the user's spendable lots oldest first, each
// under a row lock. The sequence must be re-queried per freeze because
// concurrent freezes mutate remaining balances.
func (s *LotLedgerService) SelectEligibleLots(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error) {
	lots, err := s.lots.SelectEligibleForUpdate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to select eligible lots", "userID", userID, "error", err)
		return nil, err
	}
	return lots, nil
}

// Allocate greedily walks the ordered lot sequence and takes
// min(lot.remaining, still needed) from each lot until the requested amount
// is covered or the lots run out. The returned total never exceeds
// amountNeeded and no allocation exceeds its lot's remaining balance.
// FreezeID is left unset; the freeze service fills it when it creates the
// reservation rows.
func (s *LotLedgerService) Allocate(lots []models.WalletLotDB, amountNeeded decimal.Decimal) (models.LotAllocations, decimal.Decimal) {
	allocations := models.LotAllocations{}
	covered := decimal.Zero

	remaining := amountNeeded
	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(lot.Remaining, remaining)
		if !take.IsPositive() {
			continue
		}

		allocations = append(allocations, models.LotAllocation{
			LotID:      lot.LotID,
			Amount:     take,
			Source:     lot.Source,
			BaseValue:  lot.BaseValue,
			BonusValue: lot.BonusValue,
		})
		covered = covered.Add(take)
		remaining = remaining.Sub(take)
	}

	return allocations, covered
}
