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
	// ErrDisputeNotFound is returned when the dispute does not exist or is
	// no longer open.
	ErrDisputeNotFound = errors.New("dispute not found or not open")
	// ErrTransactionNotDisputable is returned when the referenced
	// transaction cannot be disputed.
	ErrTransactionNotDisputable = errors.New("transaction cannot be disputed")
	// ErrUnknownResolution is returned for a resolution outside the accepted set.
	ErrUnknownResolution = errors.New("unknown dispute resolution")
)

// refundLotLifetime is how long value minted by a dispute refund stays spendable.
const refundLotLifetime = 365 * 24 * time.Hour

// DisputeEscrowService places dispute holds on the lots a transaction
// consumed and lifts them on resolution. A refund resolution mints the
// disputed amount back as a fresh lot instead of mutating the consumed ones,
// so the ledger history of the original transaction stays intact.
type DisputeEscrowService struct {
	runner   TxRunner
	disputes DisputeReader
	disputeW DisputeWriter
	txns     TransactionReader
	txnW     TransactionWriter
	lotsW    LotWriter
	wallets  WalletReader
	walletsW WalletWriter
	audit    Auditor
	notifier Notifier
}

// NewDisputeEscrowService creates a new DisputeEscrowService.
func NewDisputeEscrowService(
	runner TxRunner,
	disputes DisputeReader,
	disputeW DisputeWriter,
	txns TransactionReader,
	txnW TransactionWriter,
	lotsW LotWriter,
	wallets WalletReader,
	walletsW WalletWriter,
	audit Auditor,
	notifier Notifier,
) *DisputeEscrowService {
	return &DisputeEscrowService{
		runner:   runner,
		disputes: disputes,
		disputeW: disputeW,
		txns:     txns,
		txnW:     txnW,
		lotsW:    lotsW,
		wallets:  wallets,
		walletsW: walletsW,
		audit:    audit,
		notifier: notifier,
	}
}

// OpenDispute opens a dispute against a completed debit transaction and
// places an escrow hold on every lot named in its allocation snapshot. Held
// lots are skipped by freeze allocation until the dispute resolves.
func (s *DisputeEscrowService) OpenDispute(ctx context.Context, actor models.Actor, userID, transactionID uuid.UUID, reason string) (*models.DisputeDB, error) {
	dispute := &models.DisputeDB{
		DisputeID:     uuid.New(),
		UserID:        userID,
		TransactionID: transactionID,
		Reason:        reason,
		Status:        models.DisputeStatusOpen,
		OpenedAt:      time.Now(),
	}

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTransactionNotDisputable
			}
			return err
		}
		if txn.UserID != userID || txn.Direction != models.DirectionDebit || txn.Status != models.TransactionStatusCompleted {
			return ErrTransactionNotDisputable
		}

		for _, alloc := range txn.LotAllocations {
			if err := s.lotsW.SetDisputeLocked(ctx, alloc.LotID, true); err != nil {
				return err
			}
		}

		if err := s.disputeW.Save(ctx, dispute); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, "dispute.opened", "dispute", dispute.DisputeID.String(), map[string]any{
			"transaction_id": transactionID, "reason": reason,
		})
	})
	if err != nil {
		return nil, err
	}

	// Notification leaves the transaction scope; delivery failures are
	// logged and never affect the dispute itself.
	if err := s.notifier.Notify(ctx, userID, "dispute.opened", dispute); err != nil {
		logger.Log.Errorw("dispute notification failed", "disputeID", dispute.DisputeID, "error", err)
	}

	return dispute, nil
}

// AddEvidence attaches file metadata to an open dispute.
func (s *DisputeEscrowService) AddEvidence(ctx context.Context, actor models.Actor, disputeID uuid.UUID, fileName, fileURL string) (*models.DisputeEvidenceDB, error) {
	evidence := &models.DisputeEvidenceDB{
		EvidenceID: uuid.New(),
		DisputeID:  disputeID,
		FileName:   fileName,
		FileURL:    fileURL,
		UploadedAt: time.Now(),
	}

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		dispute, err := s.disputes.GetByID(ctx, disputeID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDisputeNotFound
			}
			return err
		}
		if dispute.Status != models.DisputeStatusOpen {
			return ErrDisputeNotFound
		}

		if err := s.disputeW.AddEvidence(ctx, evidence); err != nil {
			return err
		}

		return s.audit.Record(ctx, actor, "dispute.evidence_added", "dispute", disputeID.String(), map[string]any{
			"file_name": fileName,
		})
	})
	if err != nil {
		return nil, err
	}
	return evidence, nil
}

// ResolveDispute closes an open dispute and lifts the escrow holds it
// placed; account-level holds on the same lots are untouched. The
// resolution decides the terminal state: dismiss keeps the original
// transaction as settled, cancel voids the dispute, refund additionally
// mints the disputed amount back into the wallet as a new refund lot with
// a fresh expiry.
func (s *DisputeEscrowService) ResolveDispute(ctx context.Context, actor models.Actor, disputeID uuid.UUID, resolution string) (*models.DisputeDB, error) {
	var status string
	switch resolution {
	case models.DisputeResolutionDismiss:
		status = models.DisputeStatusResolved
	case models.DisputeResolutionCancel:
		status = models.DisputeStatusCancelled
	case models.DisputeResolutionRefund:
		status = models.DisputeStatusRefunded
	default:
		return nil, ErrUnknownResolution
	}

	var resolved *models.DisputeDB

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		dispute, err := s.disputes.GetOpenForUpdate(ctx, disputeID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDisputeNotFound
			}
			return err
		}

		txn, err := s.txns.GetByID(ctx, dispute.TransactionID)
		if err != nil {
			return err
		}

		for _, alloc := range txn.LotAllocations {
			if err := s.lotsW.SetDisputeLocked(ctx, alloc.LotID, false); err != nil {
				return err
			}
		}

		if resolution == models.DisputeResolutionRefund {
			if err := s.refund(ctx, dispute, txn); err != nil {
				return err
			}
		}

		if err := s.disputeW.SetStatus(ctx, disputeID, status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDisputeNotFound
			}
			return err
		}

		dispute.Status = status
		now := time.Now()
		dispute.ResolvedAt = &now
		resolved = dispute

		return s.audit.Record(ctx, actor, "dispute.resolved", "dispute", disputeID.String(), map[string]any{
			"resolution": resolution, "transaction_id": dispute.TransactionID,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, resolved.UserID, "dispute.resolved", resolved); err != nil {
		logger.Log.Errorw("dispute notification failed", "disputeID", disputeID, "error", err)
	}

	return resolved, nil
}

// refund mints the disputed amount back as a fresh lot and credits the
// wallet balance. The new lot is all base value; the promotional split of
// the original spend is not re-granted.
func (s *DisputeEscrowService) refund(ctx context.Context, dispute *models.DisputeDB, txn *models.WalletTransactionDB) error {
	wallet, err := s.wallets.GetForUpdate(ctx, dispute.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWalletNotFound
		}
		return err
	}

	now := time.Now()
	lot := &models.WalletLotDB{
		LotID:      uuid.New(),
		UserID:     dispute.UserID,
		Source:     models.LotSourceRefund,
		Amount:     txn.Amount,
		Remaining:  txn.Amount,
		BaseValue:  txn.Amount,
		BonusValue: decimal.Zero,
		Currency:   txn.Currency,
		AcquiredAt: now,
		ExpiresAt:  now.Add(refundLotLifetime),
	}
	if err := s.lotsW.Save(ctx, lot); err != nil {
		return err
	}

	refundTxn := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		UserID:        dispute.UserID,
		Direction:     models.DirectionCredit,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Type:          models.TransactionTypeRefund,
		Status:        models.TransactionStatusCompleted,
		RefType:       "dispute",
		RefID:         dispute.DisputeID.String(),
	}
	if err := s.txnW.Save(ctx, refundTxn); err != nil {
		return err
	}

	return s.walletsW.AddAvailable(ctx, wallet.WalletID, txn.Amount)
}
