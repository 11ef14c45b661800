package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Freeze statuses. A freeze starts as frozen and ends in exactly one of the
// two terminal states: consumed (successful deduction) or released
// (compensation or expiry sweep).
const (
	FreezeStatusFrozen   = "frozen"
	FreezeStatusReleased = "released"
	FreezeStatusConsumed = "consumed"
)

// FreezeTTL bounds how long a reservation may stay frozen before the sweep
// treats it as abandoned.
const FreezeTTL = 15 * time.Minute

// WalletLotFreezeDB represents a time-bounded reservation of lot value
// against a specific order. One row per lot touched by one freeze operation.
type WalletLotFreezeDB struct {
	FreezeID  uuid.UUID       `json:"freeze_id" db:"freeze_id"`   // Unique freeze identifier
	LotID     uuid.UUID       `json:"lot_id" db:"lot_id"`         // Lot the value was reserved from
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Owner of the reserved value
	OrderID   string          `json:"order_id" db:"order_id"`     // Order the reservation belongs to
	Amount    decimal.Decimal `json:"amount" db:"amount"`         // Reserved amount
	Status    string          `json:"status" db:"status"`         // frozen, released or consumed
	ExpiresAt time.Time       `json:"expires_at" db:"expires_at"` // Reservation deadline (FreezeTTL after creation)
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the freeze was created
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Timestamp of the last status change
}
