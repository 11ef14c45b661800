package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// AuditService writes audit events to durable storage and mirrors them to
// Kafka. The database append participates in the caller's transaction and
// its failure fails the mutation; the Kafka publish is best-effort and runs
// after the fact.
type AuditService struct {
	appender AuditAppender
	writer   KafkaWriter
}

// NewAuditService creates a new AuditService. writer may be nil when no
// broker is configured; events are then only persisted.
func NewAuditService(appender AuditAppender, writer KafkaWriter) *AuditService {
	return &AuditService{appender: appender, writer: writer}
}

// Record persists one audit event attributed to the given actor. The payload
// is serialized as the opaque after-state of the mutation.
func (s *AuditService) Record(ctx context.Context, actor models.Actor, event, entityType, entityID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	entry := &models.AuditLogDB{
		AuditID:    uuid.New(),
		ActorType:  actor.Type,
		ActorID:    actor.ID,
		Event:      event,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    body,
		IP:         actor.IP,
		CreatedAt:  time.Now(),
	}
	if err := s.appender.Append(ctx, entry); err != nil {
		return err
	}

	s.publish(entry)
	return nil
}

// publish mirrors the audit row to Kafka. Failures are logged only; the
// persisted row is the source of truth.
func (s *AuditService) publish(entry *models.AuditLogDB) {
	if s.writer == nil {
		return
	}

	event := models.AuditEvent{
		AuditID:    entry.AuditID.String(),
		ActorType:  entry.ActorType,
		ActorID:    entry.ActorID.String(),
		Event:      entry.Event,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Payload:    entry.Payload,
		Timestamp:  entry.CreatedAt.Unix(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "auditID", entry.AuditID, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(entry.Event),
			Value: value,
		}); err != nil {
			logger.Log.Errorw("failed to publish audit event", "auditID", entry.AuditID, "error", err)
		}
	}()
}
