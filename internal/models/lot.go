package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lot sources
const (
	LotSourceTopUp    = "top_up"
	LotSourcePromo    = "promo"
	LotSourceGiftCard = "gift_card"
	LotSourceRefund   = "refund"
)

// WalletLotDB represents a discrete unit of wallet value with its own expiry.
// Locked, DisputeLocked and Exhausted are independent dimensions: Locked is
// set by account-level holds, DisputeLocked by open-dispute escrow, and
// Exhausted means the remaining balance hit zero after a completed
// deduction. Lifting an account hold never lifts an escrow hold, and
// resolving a dispute never lifts an account hold. Calendar expiry is judged
// from ExpiresAt and never stored as a flag.
type WalletLotDB struct {
	LotID         uuid.UUID       `json:"lot_id" db:"lot_id"`                 // Unique lot identifier
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`               // Owner of the lot
	Source        string          `json:"source" db:"source"`                 // Where the value came from (top_up, promo, gift_card, refund)
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Original lot value
	Remaining     decimal.Decimal `json:"remaining" db:"remaining"`           // Unspent value, 0 <= remaining <= amount
	BaseValue     decimal.Decimal `json:"base_value" db:"base_value"`         // Paid portion of the lot
	BonusValue    decimal.Decimal `json:"bonus_value" db:"bonus_value"`       // Promotional portion of the lot
	Currency      string          `json:"currency" db:"currency"`             // Lot currency code
	Locked        bool            `json:"locked" db:"locked"`                 // Account hold flag
	DisputeLocked bool            `json:"dispute_locked" db:"dispute_locked"` // Open-dispute escrow hold flag
	Exhausted     bool            `json:"exhausted" db:"exhausted"`           // Remaining hit zero via deduction
	AcquiredAt    time.Time       `json:"acquired_at" db:"acquired_at"`       // Consumption order key (FIFO)
	ExpiresAt     time.Time       `json:"expires_at" db:"expires_at"`         // Calendar expiry of the value
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the lot was created
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Timestamp of the last lot update
}

// Eligible reports whether the lot can take part in a freeze at the given moment.
func (l *WalletLotDB) Eligible(now time.Time) bool {
	return !l.Locked && !l.DisputeLocked && !l.Exhausted && l.Remaining.IsPositive() && l.ExpiresAt.After(now)
}

// Held reports whether any hold, account or escrow, blocks the lot.
func (l *WalletLotDB) Held() bool {
	return l.Locked || l.DisputeLocked
}
