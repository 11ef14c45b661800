package models

import (
	"time"

	"github.com/google/uuid"
)

// Dispute statuses
const (
	DisputeStatusOpen      = "open"
	DisputeStatusResolved  = "resolved"
	DisputeStatusRefunded  = "refunded"
	DisputeStatusCancelled = "cancelled"
)

// Dispute resolutions accepted by the escrow service.
const (
	DisputeResolutionDismiss = "dismiss"
	DisputeResolutionRefund  = "refund"
	DisputeResolutionCancel  = "cancel"
)

// DisputeDB references exactly one wallet transaction under review.
// While it is open, the lots named in the transaction's allocation snapshot
// stay locked.
type DisputeDB struct {
	DisputeID     uuid.UUID  `json:"dispute_id" db:"dispute_id"`         // Unique dispute identifier
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`               // User who opened the dispute
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"` // Transaction under dispute
	Reason        string     `json:"reason" db:"reason"`                 // Why the transaction is disputed
	Status        string     `json:"status" db:"status"`                 // open, resolved, refunded or cancelled
	OpenedAt      time.Time  `json:"opened_at" db:"opened_at"`           // Timestamp when the dispute was opened
	ResolvedAt    *time.Time `json:"resolved_at" db:"resolved_at"`       // Set on resolution or cancellation
}

// DisputeEvidenceDB is append-only file metadata attached to a dispute.
type DisputeEvidenceDB struct {
	EvidenceID uuid.UUID `json:"evidence_id" db:"evidence_id"` // Unique evidence identifier
	DisputeID  uuid.UUID `json:"dispute_id" db:"dispute_id"`   // Dispute the file belongs to
	FileName   string    `json:"file_name" db:"file_name"`     // Original file name
	FileURL    string    `json:"file_url" db:"file_url"`       // Storage location of the file
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"` // Timestamp of the upload
}
