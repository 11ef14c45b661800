package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// AuditLogWriteRepository appends audit events. Rows are never mutated and
// append errors always propagate: reconciliation depends on this log.
type AuditLogWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuditLogWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuditLogWriteRepository {
	return &AuditLogWriteRepository{db: db, txGetter: txGetter}
}

func (r *AuditLogWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Append inserts one audit event.
func (r *AuditLogWriteRepository) Append(ctx context.Context, entry *models.AuditLogDB) error {
	const query = `
		INSERT INTO audit_logs (audit_id, actor_type, actor_id, event, entity_type, entity_id, payload, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		entry.AuditID, entry.ActorType, entry.ActorID, entry.Event,
		entry.EntityType, entry.EntityID, entry.Payload, entry.IP)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entry.AuditID, entry.Event, entry.EntityType, entry.EntityID},
		"error", err,
	)

	return err
}
