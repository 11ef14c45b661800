package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet statuses
const (
	WalletStatusActive = "active"
	WalletStatusLocked = "locked"
)

// WalletDB represents a wallet row in the database.
// TotalAvailable and TotalFrozen are both non-negative; their sum only
// changes through top-ups, completed deductions and refunds.
type WalletDB struct {
	WalletID       uuid.UUID       `json:"wallet_id" db:"wallet_id"`             // Unique wallet identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // Identifier of the wallet's owner
	Currency       string          `json:"currency" db:"currency"`               // Wallet currency code (e.g., USD)
	TotalAvailable decimal.Decimal `json:"total_available" db:"total_available"` // Amount available for spending
	TotalFrozen    decimal.Decimal `json:"total_frozen" db:"total_frozen"`       // Amount reserved by in-flight freezes
	Status         string          `json:"status" db:"status"`                   // active or locked
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the wallet was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last wallet update
}
