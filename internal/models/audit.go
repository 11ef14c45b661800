package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Actor types for audit attribution.
const (
	ActorTypeUser     = "user"
	ActorTypeOperator = "operator"
	ActorTypeSystem   = "system"
)

// Actor identifies who performed a ledger mutation and from where.
// It is passed explicitly into every operation instead of being read from
// ambient request state.
type Actor struct {
	Type string    `json:"type"` // user, operator or system
	ID   uuid.UUID `json:"id"`   // Actor identifier (uuid.Nil for system)
	IP   string    `json:"ip"`   // Originating IP, empty for system actors
}

// SystemActor is the attribution used by background sweeps.
var SystemActor = Actor{Type: ActorTypeSystem}

// AuditLogDB is one append-only audit event. Rows are never mutated.
type AuditLogDB struct {
	AuditID    uuid.UUID       `json:"audit_id" db:"audit_id"`       // Unique event identifier
	ActorType  string          `json:"actor_type" db:"actor_type"`   // user, operator or system
	ActorID    uuid.UUID       `json:"actor_id" db:"actor_id"`       // Who performed the action
	Event      string          `json:"event" db:"event"`             // Event name (e.g., wallet.freeze)
	EntityType string          `json:"entity_type" db:"entity_type"` // Kind of entity affected
	EntityID   string          `json:"entity_id" db:"entity_id"`     // Identifier of the affected entity
	Payload    json.RawMessage `json:"payload" db:"payload"`         // Opaque after-state payload
	IP         string          `json:"ip" db:"ip"`                   // Originating IP
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`   // Timestamp of the event
}

// AuditEvent is the message body published to the audit Kafka topic.
type AuditEvent struct {
	AuditID    string          `json:"audit_id"`    // Matches the persisted audit row
	ActorType  string          `json:"actor_type"`  // user, operator or system
	ActorID    string          `json:"actor_id"`    // Who performed the action
	Event      string          `json:"event"`       // Event name
	EntityType string          `json:"entity_type"` // Kind of entity affected
	EntityID   string          `json:"entity_id"`   // Identifier of the affected entity
	Payload    json.RawMessage `json:"payload"`     // Opaque after-state payload
	Timestamp  int64           `json:"timestamp"`   // Unix timestamp of the event
}
