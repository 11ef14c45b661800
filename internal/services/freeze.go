package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidOrder is returned when the order id is missing.
	ErrInvalidOrder = errors.New("invalid order id")
	// ErrInvalidAmount is returned when the amount is zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrWalletLocked is returned when the wallet is under an account-level hold.
	ErrWalletLocked = errors.New("wallet is locked")
	// ErrInvalidFreezeTransaction is returned when the referenced freeze
	// transaction does not exist, belongs to someone else, or already
	// reached a terminal state. Deduct and release are deliberately not
	// idempotent: a second call fails cleanly instead of double-mutating.
	ErrInvalidFreezeTransaction = errors.New("invalid freeze transaction")
	// ErrAmountMismatch is returned when the requested amount does not match
	// the frozen transaction amount.
	ErrAmountMismatch = errors.New("amount does not match frozen transaction")
)

// FreezeResult describes the outcome of a freeze operation.
type FreezeResult struct {
	FrozenAmount        decimal.Decimal             // Amount actually reserved from the wallet
	RemainingForGateway decimal.Decimal             // Uncovered remainder routed to the gateway
	Transaction         *models.WalletTransactionDB // Pending DR transaction, nil when nothing was frozen
	Allocations         models.LotAllocations       // Ordered allocation snapshot
}

// DeductResult describes a finalized deduction.
type DeductResult struct {
	TransactionID uuid.UUID       // Completed freeze transaction
	Amount        decimal.Decimal // Deducted amount
}

// ReleaseResult describes a compensating release.
type ReleaseResult struct {
	TransactionID uuid.UUID       // Failed freeze transaction (uuid.Nil for release-by-order)
	Amount        decimal.Decimal // Amount returned to the available balance
}

// sweepBatchSize bounds how many abandoned reservations one sweep pass handles.
const sweepBatchSize = 100

// FreezeService implements the freeze -> deduct-or-release protocol over
// wallets, lots, freeze reservations and wallet transactions. Every
// operation runs in a single database transaction holding row locks on the
// wallet and the touched lots, so concurrent checkouts for the same user
// serialize instead of double-spending lot value.
type FreezeService struct {
	runner    TxRunner
	wallets   WalletReader
	walletsW  WalletWriter
	allocator LotAllocator
	lotsW     LotWriter
	freezes   FreezeReader
	freezesW  FreezeWriter
	txns      TransactionReader
	txnsW     TransactionWriter
	audit     Auditor
}

// NewFreezeService creates a new FreezeService.
func NewFreezeService(
	runner TxRunner,
	wallets WalletReader,
	walletsW WalletWriter,
	allocator LotAllocator,
	lotsW LotWriter,
	freezes FreezeReader,
	freezesW FreezeWriter,
	txns TransactionReader,
	txnsW TransactionWriter,
	audit Auditor,
) *FreezeService {
	return &FreezeService{
		runner:    runner,
		wallets:   wallets,
		walletsW:  walletsW,
		allocator: allocator,
		lotsW:     lotsW,
		freezes:   freezes,
		freezesW:  freezesW,
		txns:      txns,
		txnsW:     txnsW,
		audit:     audit,
	}
}

// Freeze reserves up to amount from the user's wallet against orderID.
// A user without a wallet, or without spendable balance, is not an error:
// the result simply reports zero frozen and the full amount for the gateway.
// Failure anywhere rolls the whole transaction back; no partial freeze is
// ever persisted.
func (s *FreezeService) Freeze(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string) (*FreezeResult, error) {
	if orderID == "" {
		return nil, ErrInvalidOrder
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *FreezeResult
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			result = &FreezeResult{FrozenAmount: decimal.Zero, RemainingForGateway: amount}
			return nil
		}
		if err != nil {
			return err
		}
		if wallet.Status == models.WalletStatusLocked {
			return ErrWalletLocked
		}

		amountToFreeze := decimal.Min(amount, wallet.TotalAvailable)
		if !amountToFreeze.IsPositive() {
			result = &FreezeResult{FrozenAmount: decimal.Zero, RemainingForGateway: amount}
			return nil
		}

		lots, err := s.allocator.SelectEligibleLots(ctx, userID)
		if err != nil {
			return err
		}

		allocations, covered := s.allocator.Allocate(lots, amountToFreeze)
		if !covered.IsPositive() {
			result = &FreezeResult{FrozenAmount: decimal.Zero, RemainingForGateway: amount}
			return nil
		}

		now := time.Now()
		transactionID := uuid.New()

		for i := range allocations {
			freezeID := uuid.New()
			allocations[i].FreezeID = freezeID

			freeze := &models.WalletLotFreezeDB{
				FreezeID:  freezeID,
				LotID:     allocations[i].LotID,
				UserID:    userID,
				OrderID:   orderID,
				Amount:    allocations[i].Amount,
				Status:    models.FreezeStatusFrozen,
				ExpiresAt: now.Add(models.FreezeTTL),
			}
			if err := s.freezesW.Save(ctx, freeze); err != nil {
				return err
			}
			// The reservation happens now, before any gateway round-trip.
			if err := s.lotsW.DecrementRemaining(ctx, allocations[i].LotID, allocations[i].Amount); err != nil {
				return err
			}
		}

		txn := &models.WalletTransactionDB{
			TransactionID:  transactionID,
			UserID:         userID,
			Direction:      models.DirectionDebit,
			Amount:         covered,
			Currency:       wallet.Currency,
			Type:           models.TransactionTypePayment,
			Status:         models.TransactionStatusPending,
			RefType:        "order",
			RefID:          orderID,
			LotAllocations: allocations,
		}
		if err := s.txnsW.Save(ctx, txn); err != nil {
			return err
		}
		if err := s.walletsW.ApplyFreeze(ctx, wallet.WalletID, covered); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, actor, "wallet.freeze", "wallet_transaction", transactionID.String(), txn); err != nil {
			return err
		}

		result = &FreezeResult{
			FrozenAmount:        covered,
			RemainingForGateway: amount.Sub(covered),
			Transaction:         txn,
			Allocations:         allocations,
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("freeze failed", "userID", userID, "orderID", orderID, "amount", amount, "error", err)
		return nil, err
	}

	return result, nil
}

// Deduct finalizes a previously frozen reservation: every freeze in the
// transaction's allocation snapshot is consumed, depleted lots are marked
// exhausted and the frozen amount leaves the wallet. The available balance
// was already decremented at freeze time and is not touched again.
func (s *FreezeService) Deduct(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) (*DeductResult, error) {
	if orderID == "" {
		return nil, ErrInvalidOrder
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *DeductResult
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidFreezeTransaction
		}
		if err != nil {
			return err
		}

		txn, err := s.verifyPendingTransaction(ctx, userID, amount, orderID, freezeTransactionID)
		if err != nil {
			return err
		}

		for _, alloc := range txn.LotAllocations {
			if err := s.freezesW.SetStatus(ctx, alloc.FreezeID, models.FreezeStatusConsumed); err != nil {
				return err
			}
			if err := s.lotsW.MarkExhaustedIfDepleted(ctx, alloc.LotID); err != nil {
				return err
			}
		}

		if err := s.txnsW.SetStatus(ctx, txn.TransactionID, models.TransactionStatusCompleted); err != nil {
			return err
		}
		if err := s.walletsW.ApplyDeduct(ctx, wallet.WalletID, txn.Amount); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, actor, "wallet.deduct", "wallet_transaction", txn.TransactionID.String(), txn); err != nil {
			return err
		}

		result = &DeductResult{TransactionID: txn.TransactionID, Amount: txn.Amount}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("deduct failed", "userID", userID, "orderID", orderID, "transactionID", freezeTransactionID, "error", err)
		return nil, err
	}

	return result, nil
}

// Release is the compensating reversal of a freeze: every reservation in the
// snapshot is released, each lot's remaining balance is restored (clearing
// the exhausted flag) and the amount moves back from frozen to available.
func (s *FreezeService) Release(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) (*ReleaseResult, error) {
	if orderID == "" {
		return nil, ErrInvalidOrder
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *ReleaseResult
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidFreezeTransaction
		}
		if err != nil {
			return err
		}

		txn, err := s.verifyPendingTransaction(ctx, userID, amount, orderID, freezeTransactionID)
		if err != nil {
			return err
		}

		for _, alloc := range txn.LotAllocations {
			if err := s.freezesW.SetStatus(ctx, alloc.FreezeID, models.FreezeStatusReleased); err != nil {
				return err
			}
			if err := s.lotsW.RestoreRemaining(ctx, alloc.LotID, alloc.Amount); err != nil {
				return err
			}
		}

		if err := s.txnsW.SetStatus(ctx, txn.TransactionID, models.TransactionStatusFailed); err != nil {
			return err
		}
		if err := s.walletsW.ApplyRelease(ctx, wallet.WalletID, txn.Amount); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, actor, "wallet.release", "wallet_transaction", txn.TransactionID.String(), txn); err != nil {
			return err
		}

		result = &ReleaseResult{TransactionID: txn.TransactionID, Amount: txn.Amount}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("release failed", "userID", userID, "orderID", orderID, "transactionID", freezeTransactionID, "error", err)
		return nil, err
	}

	return result, nil
}

// ReleaseByOrder releases every still-frozen reservation for the order. Used
// when the caller has lost the freeze transaction handle; the per-lot and
// per-wallet effects match Release, aggregated over the matching rows.
func (s *FreezeService) ReleaseByOrder(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string) (*ReleaseResult, error) {
	if orderID == "" {
		return nil, ErrInvalidOrder
	}

	var result *ReleaseResult
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			result = &ReleaseResult{Amount: decimal.Zero}
			return nil
		}
		if err != nil {
			return err
		}

		freezes, err := s.freezes.ListFrozenByOrder(ctx, userID, orderID)
		if err != nil {
			return err
		}
		if len(freezes) == 0 {
			result = &ReleaseResult{Amount: decimal.Zero}
			return nil
		}

		total := decimal.Zero
		for _, freeze := range freezes {
			if err := s.freezesW.SetStatus(ctx, freeze.FreezeID, models.FreezeStatusReleased); err != nil {
				return err
			}
			if err := s.lotsW.RestoreRemaining(ctx, freeze.LotID, freeze.Amount); err != nil {
				return err
			}
			total = total.Add(freeze.Amount)
		}

		if err := s.txnsW.FailPendingByOrder(ctx, userID, orderID); err != nil {
			return err
		}
		if err := s.walletsW.ApplyRelease(ctx, wallet.WalletID, total); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, actor, "wallet.release_by_order", "order", orderID, map[string]any{
			"user_id": userID, "released": total,
		}); err != nil {
			return err
		}

		result = &ReleaseResult{Amount: total}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("release by order failed", "userID", userID, "orderID", orderID, "error", err)
		return nil, err
	}

	return result, nil
}

// ProcessExpiredFreezes releases reservations that stayed frozen past their
// deadline. A reservation that is never deducted or released — a crash
// between the gateway call and compensation, an abandoned checkout — is
// reclaimed here. Returns the number of reservations released.
func (s *FreezeService) ProcessExpiredFreezes(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.freezes.ListExpiredFrozen(ctx, now, sweepBatchSize)
	if err != nil {
		logger.Log.Errorw("failed to list expired freezes", "error", err)
		return 0, err
	}

	released := 0
	for _, freeze := range expired {
		err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
			wallet, err := s.wallets.GetForUpdate(ctx, freeze.UserID)
			if err != nil {
				return err
			}
			// Guarded transition: a reservation settled since the listing
			// fails here and is skipped.
			if err := s.freezesW.SetStatus(ctx, freeze.FreezeID, models.FreezeStatusReleased); err != nil {
				return err
			}
			if err := s.lotsW.RestoreRemaining(ctx, freeze.LotID, freeze.Amount); err != nil {
				return err
			}
			if err := s.txnsW.FailPendingByOrder(ctx, freeze.UserID, freeze.OrderID); err != nil {
				return err
			}
			if err := s.walletsW.ApplyRelease(ctx, wallet.WalletID, freeze.Amount); err != nil {
				return err
			}
			return s.audit.Record(ctx, models.SystemActor, "wallet.freeze_expired", "wallet_lot_freeze", freeze.FreezeID.String(), freeze)
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			logger.Log.Errorw("failed to release expired freeze", "freezeID", freeze.FreezeID, "error", err)
			continue
		}
		released++
	}

	return released, nil
}

// verifyPendingTransaction loads the freeze transaction under a row lock and
// checks it belongs to the caller, references the order and matches the
// amount. Terminal transactions fail the pending-only lookup.
func (s *FreezeService) verifyPendingTransaction(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) (*models.WalletTransactionDB, error) {
	txn, err := s.txns.GetPendingForUpdate(ctx, freezeTransactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidFreezeTransaction
	}
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID || txn.RefID != orderID {
		return nil, ErrInvalidFreezeTransaction
	}
	if !txn.Amount.Equal(amount) {
		return nil, ErrAmountMismatch
	}
	return txn, nil
}
