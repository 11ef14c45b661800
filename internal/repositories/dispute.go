package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// DisputeReadRepository handles dispute read operations.
type DisputeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDisputeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DisputeReadRepository {
	return &DisputeReadRepository{db: db, txGetter: txGetter}
}

func (r *DisputeReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a dispute.
func (r *DisputeReadRepository) GetByID(ctx context.Context, disputeID uuid.UUID) (*models.DisputeDB, error) {
	const query = `
		SELECT dispute_id, user_id, transaction_id, reason, status, opened_at, resolved_at
		FROM disputes
		WHERE dispute_id = $1
	`

	var dispute models.DisputeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &dispute, query, disputeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{disputeID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &dispute, nil
}

// GetOpenForUpdate returns the dispute under a row lock only while it is
// still open.
func (r *DisputeReadRepository) GetOpenForUpdate(ctx context.Context, disputeID uuid.UUID) (*models.DisputeDB, error) {
	const query = `
		SELECT dispute_id, user_id, transaction_id, reason, status, opened_at, resolved_at
		FROM disputes
		WHERE dispute_id = $1 AND status = 'open'
		FOR UPDATE
	`

	var dispute models.DisputeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &dispute, query, disputeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{disputeID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &dispute, nil
}

// DisputeWriteRepository handles dispute write operations.
type DisputeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDisputeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DisputeWriteRepository {
	return &DisputeWriteRepository{db: db, txGetter: txGetter}
}

func (r *DisputeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new dispute.
func (r *DisputeWriteRepository) Save(ctx context.Context, dispute *models.DisputeDB) error {
	const query = `
		INSERT INTO disputes (dispute_id, user_id, transaction_id, reason, status, opened_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		dispute.DisputeID, dispute.UserID, dispute.TransactionID, dispute.Reason, dispute.Status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{dispute.DisputeID, dispute.TransactionID, dispute.Reason},
		"error", err,
	)

	return err
}

// SetStatus moves an open dispute into a terminal state.
func (r *DisputeWriteRepository) SetStatus(ctx context.Context, disputeID uuid.UUID, status string) error {
	const query = `
		UPDATE disputes
		SET status = $2, resolved_at = NOW()
		WHERE dispute_id = $1 AND status = 'open'
		RETURNING dispute_id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, disputeID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{disputeID, status},
		"error", err,
	)

	return err
}

// AddEvidence appends file metadata to a dispute. Evidence rows are never
// updated or deleted.
func (r *DisputeWriteRepository) AddEvidence(ctx context.Context, evidence *models.DisputeEvidenceDB) error {
	const query = `
		INSERT INTO dispute_evidence (evidence_id, dispute_id, file_name, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		evidence.EvidenceID, evidence.DisputeID, evidence.FileName, evidence.FileURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{evidence.EvidenceID, evidence.DisputeID, evidence.FileName},
		"error", err,
	)

	return err
}
