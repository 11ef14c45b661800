package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction directions
const (
	DirectionDebit  = "DR"
	DirectionCredit = "CR"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction types
const (
	TransactionTypePayment = "payment"
	TransactionTypeTopUp   = "top_up"
	TransactionTypeRefund  = "refund"
)

// LotAllocation is one entry of a DR transaction's allocation snapshot:
// which lot contributed how much, through which freeze row.
type LotAllocation struct {
	LotID      uuid.UUID       `json:"lot_id"`      // Allocated lot
	FreezeID   uuid.UUID       `json:"freeze_id"`   // Freeze row created for this allocation
	Amount     decimal.Decimal `json:"amount"`      // Amount taken from the lot
	Source     string          `json:"source"`      // Lot source at allocation time
	BaseValue  decimal.Decimal `json:"base_value"`  // Lot base value at allocation time
	BonusValue decimal.Decimal `json:"bonus_value"` // Lot bonus value at allocation time
}

// LotAllocations is the ordered allocation snapshot stored as JSONB.
// It is the single source of truth for which lots a DR transaction touched
// and is never recomputed from freeze rows.
type LotAllocations []LotAllocation

// Value implements driver.Valuer for JSONB storage.
func (a LotAllocations) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (a *LotAllocations) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return errors.New("unsupported type for LotAllocations")
	}
}

// Total returns the sum of all allocation amounts.
func (a LotAllocations) Total() decimal.Decimal {
	total := decimal.Zero
	for _, alloc := range a {
		total = total.Add(alloc.Amount)
	}
	return total
}

// WalletTransactionDB represents a wallet ledger entry.
type WalletTransactionDB struct {
	TransactionID  uuid.UUID       `json:"transaction_id" db:"transaction_id"`   // Unique transaction identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // Owner of the wallet
	Direction      string          `json:"direction" db:"direction"`             // DR or CR
	Amount         decimal.Decimal `json:"amount" db:"amount"`                   // Transaction amount
	Currency       string          `json:"currency" db:"currency"`               // Transaction currency code
	Type           string          `json:"type" db:"type"`                       // payment, top_up or refund
	Status         string          `json:"status" db:"status"`                   // pending, completed or failed
	RefType        string          `json:"ref_type" db:"ref_type"`               // Kind of external reference (e.g., order, dispute)
	RefID          string          `json:"ref_id" db:"ref_id"`                   // External reference identifier
	LotAllocations LotAllocations  `json:"lot_allocations" db:"lot_allocations"` // Ordered allocation snapshot (DR only)
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the transaction was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last status change
}
