package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment intent statuses. The intent row is the persisted saga state for a
// split payment: a crash between the gateway call and compensation leaves the
// intent in requires_gateway and the freeze reservation is reclaimed by the
// expiry sweep.
const (
	IntentStatusPending         = "pending"
	IntentStatusRequiresGateway = "requires_gateway"
	IntentStatusCompleted       = "completed"
	IntentStatusFailed          = "failed"
	IntentStatusCompensated     = "compensated"
)

// Payment channels
const (
	PaymentChannelWallet  = "wallet"
	PaymentChannelGateway = "gateway"
	PaymentChannelSplit   = "split"
)

// PaymentIntentDB records how a checkout is split between wallet balance and
// the external gateway.
type PaymentIntentDB struct {
	IntentID        uuid.UUID       `json:"intent_id" db:"intent_id"`                         // Unique intent identifier
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`                             // Paying user
	OrderID         string          `json:"order_id" db:"order_id"`                           // Order being paid
	Currency        string          `json:"currency" db:"currency"`                           // Order currency code
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`                   // Full checkout amount, order currency
	WalletAmount    decimal.Decimal `json:"wallet_amount" db:"wallet_amount"`                 // Portion covered by wallet value, order currency
	GatewayAmount   decimal.Decimal `json:"gateway_amount" db:"gateway_amount"`               // Portion routed to the gateway, order currency
	FrozenAmount    decimal.Decimal `json:"frozen_amount" db:"frozen_amount"`                 // Reserved wallet value in the wallet's own currency
	FreezeTxnID     uuid.UUID       `json:"freeze_transaction_id" db:"freeze_transaction_id"` // Wallet freeze transaction, uuid.Nil when no wallet leg
	Channel         string          `json:"channel" db:"channel"`                             // wallet, gateway or split
	Status          string          `json:"status" db:"status"`                               // Saga state
	CheckoutURL     string          `json:"checkout_url" db:"checkout_url"`                   // Redirect URL for the async gateway flow
	GatewayChargeID string          `json:"gateway_charge_id" db:"gateway_charge_id"`         // Gateway-side charge identifier
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`                       // Timestamp when the intent was created
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`                       // Timestamp of the last state change
}
