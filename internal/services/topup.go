package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TopUpResult reports a completed wallet credit.
type TopUpResult struct {
	Wallet      *models.WalletDB            // Wallet after the credit
	Lot         *models.WalletLotDB         // Lot minted for the credited value
	Transaction *models.WalletTransactionDB // Completed CR ledger entry
}

// TopUpService credits wallet value. Every credit mints exactly one lot
// carrying its own expiry; the paid and promotional portions are tracked
// separately on the lot.
type TopUpService struct {
	runner  TxRunner
	wallets WalletWriter
	lots    LotWriter
	txns    TransactionWriter
	audit   Auditor
}

// NewTopUpService creates a new TopUpService.
func NewTopUpService(runner TxRunner, wallets WalletWriter, lots LotWriter, txns TransactionWriter, audit Auditor) *TopUpService {
	return &TopUpService{runner: runner, wallets: wallets, lots: lots, txns: txns, audit: audit}
}

// Credit adds value to the user's wallet as a new lot. baseAmount is the
// paid portion and must be positive; bonusAmount is the promotional portion
// and may be zero. The wallet row is created lazily on first credit.
func (s *TopUpService) Credit(ctx context.Context, actor models.Actor, userID uuid.UUID, baseAmount, bonusAmount decimal.Decimal, currency, source, refID string, expiresAt time.Time) (*TopUpResult, error) {
	if !baseAmount.IsPositive() || bonusAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !models.IsSupportedCurrency(currency) {
		return nil, ErrUnknownCurrency
	}
	if !expiresAt.After(time.Now()) {
		return nil, ErrInvalidExpiry
	}

	total := baseAmount.Add(bonusAmount)
	var result *TopUpResult

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.Create(ctx, userID, currency)
		if err != nil {
			return err
		}
		if wallet.Status == models.WalletStatusLocked {
			return ErrWalletLocked
		}

		now := time.Now()
		lot := &models.WalletLotDB{
			LotID:      uuid.New(),
			UserID:     userID,
			Source:     source,
			Amount:     total,
			Remaining:  total,
			BaseValue:  baseAmount,
			BonusValue: bonusAmount,
			Currency:   currency,
			AcquiredAt: now,
			ExpiresAt:  expiresAt,
		}
		if err := s.lots.Save(ctx, lot); err != nil {
			return err
		}

		txn := &models.WalletTransactionDB{
			TransactionID: uuid.New(),
			UserID:        userID,
			Direction:     models.DirectionCredit,
			Amount:        total,
			Currency:      currency,
			Type:          models.TransactionTypeTopUp,
			Status:        models.TransactionStatusCompleted,
			RefType:       "top_up",
			RefID:         refID,
		}
		if err := s.txns.Save(ctx, txn); err != nil {
			return err
		}

		if err := s.wallets.AddAvailable(ctx, wallet.WalletID, total); err != nil {
			return err
		}
		wallet.TotalAvailable = wallet.TotalAvailable.Add(total)

		result = &TopUpResult{Wallet: wallet, Lot: lot, Transaction: txn}

		return s.audit.Record(ctx, actor, "wallet.top_up", "wallet", wallet.WalletID.String(), map[string]any{
			"base_amount": baseAmount, "bonus_amount": bonusAmount, "currency": currency, "lot_id": lot.LotID,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
