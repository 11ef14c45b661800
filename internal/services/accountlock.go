package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

var (
	// ErrWalletNotFound is returned when the user has no wallet to lock.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrLotNotFound is returned when the lot does not exist.
	ErrLotNotFound = errors.New("lot not found")
	// ErrInvalidExpiry is returned when a temporary lock expires in the past.
	ErrInvalidExpiry = errors.New("expiry must be in the future")
)

// AccountLockService implements wallet-wide account holds for fraud review.
// It is orthogonal to per-order freeze reservations and to dispute escrow:
// locking flips the wallet status and cascades the account-hold flag across
// all of the user's lots without touching in-flight reservations or
// dispute-held lots.
type AccountLockService struct {
	runner   TxRunner
	wallets  WalletReader
	walletsW WalletWriter
	lotsR    LotReader
	lotsW    LotWriter
	locks    LockReader
	locksW   LockWriter
	audit    Auditor
}

// NewAccountLockService creates a new AccountLockService.
func NewAccountLockService(
	runner TxRunner,
	wallets WalletReader,
	walletsW WalletWriter,
	lotsR LotReader,
	lotsW LotWriter,
	locks LockReader,
	locksW LockWriter,
	audit Auditor,
) *AccountLockService {
	return &AccountLockService{
		runner:   runner,
		wallets:  wallets,
		walletsW: walletsW,
		lotsR:    lotsR,
		lotsW:    lotsW,
		locks:    locks,
		locksW:   locksW,
		audit:    audit,
	}
}

// FreezeWallet places a permanent wallet-wide hold.
func (s *AccountLockService) FreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID, reason, notes string) (*models.WalletLockDB, error) {
	return s.freezeWallet(ctx, actor, userID, reason, notes, nil)
}

// TemporaryFreezeWallet places a wallet-wide hold that the expiry sweep
// lifts automatically once expiresAt passes.
func (s *AccountLockService) TemporaryFreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID, reason, notes string, expiresAt time.Time) (*models.WalletLockDB, error) {
	if !expiresAt.After(time.Now()) {
		return nil, ErrInvalidExpiry
	}
	return s.freezeWallet(ctx, actor, userID, reason, notes, &expiresAt)
}

func (s *AccountLockService) freezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID, reason, notes string, expiresAt *time.Time) (*models.WalletLockDB, error) {
	var lock *models.WalletLockDB
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWalletNotFound
		}
		if err != nil {
			return err
		}

		if err := s.walletsW.SetStatus(ctx, wallet.WalletID, models.WalletStatusLocked); err != nil {
			return err
		}
		if err := s.lotsW.SetLockedByUser(ctx, userID, true); err != nil {
			return err
		}

		lock = &models.WalletLockDB{
			LockID:    uuid.New(),
			WalletID:  wallet.WalletID,
			LockedBy:  actor.ID,
			Reason:    reason,
			Notes:     notes,
			ExpiresAt: expiresAt,
		}
		if err := s.locksW.Save(ctx, lock); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, "wallet.lock", "wallet", wallet.WalletID.String(), lock)
	})
	if err != nil {
		logger.Log.Errorw("failed to freeze wallet", "userID", userID, "reason", reason, "error", err)
		return nil, err
	}

	return lock, nil
}

// UnfreezeWallet lifts all account holds on the wallet and its lots.
// Dispute escrow holds stay in place.
func (s *AccountLockService) UnfreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID) error {
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWalletNotFound
		}
		if err != nil {
			return err
		}

		active, err := s.locks.ListActiveByWallet(ctx, wallet.WalletID)
		if err != nil {
			return err
		}
		for _, lock := range active {
			if err := s.locksW.Resolve(ctx, lock.LockID); err != nil {
				return err
			}
		}

		if err := s.walletsW.SetStatus(ctx, wallet.WalletID, models.WalletStatusActive); err != nil {
			return err
		}
		if err := s.lotsW.SetLockedByUser(ctx, userID, false); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, "wallet.unlock", "wallet", wallet.WalletID.String(), map[string]any{
			"resolved_locks": len(active),
		})
	})
	if err != nil {
		logger.Log.Errorw("failed to unfreeze wallet", "userID", userID, "error", err)
		return err
	}

	return nil
}

// FreezeLot places a hold on a single lot without touching the wallet or the
// user's other lots.
func (s *AccountLockService) FreezeLot(ctx context.Context, actor models.Actor, lotID uuid.UUID) error {
	return s.setLotLocked(ctx, actor, lotID, true, "lot.lock")
}

// UnfreezeLot lifts a single-lot hold.
func (s *AccountLockService) UnfreezeLot(ctx context.Context, actor models.Actor, lotID uuid.UUID) error {
	return s.setLotLocked(ctx, actor, lotID, false, "lot.unlock")
}

func (s *AccountLockService) setLotLocked(ctx context.Context, actor models.Actor, lotID uuid.UUID, locked bool, event string) error {
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		lot, err := s.lotsR.GetByID(ctx, lotID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLotNotFound
		}
		if err != nil {
			return err
		}

		if err := s.lotsW.SetLocked(ctx, lotID, locked); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, event, "wallet_lot", lot.LotID.String(), map[string]any{
			"user_id": lot.UserID, "locked": locked,
		})
	})
	if err != nil {
		logger.Log.Errorw("failed to set lot lock", "lotID", lotID, "locked", locked, "error", err)
		return err
	}

	return nil
}

// ProcessExpiredLocks lifts temporary wallet holds whose expiry has passed.
// The wallet is reactivated only when no other hold remains. Returns the
// number of locks resolved.
func (s *AccountLockService) ProcessExpiredLocks(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.locks.ListExpired(ctx, now, sweepBatchSize)
	if err != nil {
		logger.Log.Errorw("failed to list expired locks", "error", err)
		return 0, err
	}

	resolved := 0
	for _, lock := range expired {
		err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
			wallet, err := s.wallets.GetByID(ctx, lock.WalletID)
			if err != nil {
				return err
			}

			if err := s.locksW.Resolve(ctx, lock.LockID); err != nil {
				return err
			}

			remaining, err := s.locks.ListActiveByWallet(ctx, wallet.WalletID)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return s.audit.Record(ctx, models.SystemActor, "wallet.lock_expired", "wallet_lock", lock.LockID.String(), lock)
			}

			if err := s.walletsW.SetStatus(ctx, wallet.WalletID, models.WalletStatusActive); err != nil {
				return err
			}
			if err := s.lotsW.SetLockedByUser(ctx, wallet.UserID, false); err != nil {
				return err
			}

			return s.audit.Record(ctx, models.SystemActor, "wallet.lock_expired", "wallet_lock", lock.LockID.String(), lock)
		})
		if err != nil {
			logger.Log.Errorw("failed to resolve expired lock", "lockID", lock.LockID, "error", err)
			continue
		}
		resolved++
	}

	return resolved, nil
}
