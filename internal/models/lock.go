package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletLockDB represents a wallet-wide hold placed by fraud/dispute review.
// A lock with a nil ExpiresAt is permanent and only lifted manually.
type WalletLockDB struct {
	LockID     uuid.UUID  `json:"lock_id" db:"lock_id"`         // Unique lock identifier
	WalletID   uuid.UUID  `json:"wallet_id" db:"wallet_id"`     // Wallet the lock applies to
	LockedBy   uuid.UUID  `json:"locked_by" db:"locked_by"`     // Operator who placed the lock
	Reason     string     `json:"reason" db:"reason"`           // Short machine-readable reason
	Notes      string     `json:"notes" db:"notes"`             // Free-form operator notes
	ExpiresAt  *time.Time `json:"expires_at" db:"expires_at"`   // Nil for permanent locks
	ResolvedAt *time.Time `json:"resolved_at" db:"resolved_at"` // Set once the lock is lifted
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`   // Timestamp when the lock was placed
}
