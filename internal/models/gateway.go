package models

import "github.com/shopspring/decimal"

// Gateway charge statuses for the synchronous flow.
const (
	GatewayChargeSucceeded = "succeeded"
	GatewayChargeFailed    = "failed"
)

// GatewayChargeRequest is the remainder leg of a split payment sent to the
// external payment gateway.
type GatewayChargeRequest struct {
	Amount    decimal.Decimal   `json:"amount"`     // Amount to charge
	Currency  string            `json:"currency"`   // Charge currency code
	ReturnURL string            `json:"return_url"` // Where the gateway redirects after payment
	CancelURL string            `json:"cancel_url"` // Where the gateway redirects on cancellation
	Metadata  map[string]string `json:"metadata"`   // Opaque correlation data (order id, intent id)
}

// GatewayChargeResult is either a redirect URL (asynchronous flow) or an
// immediate charge outcome. Exactly one of CheckoutURL and ChargeID is set.
type GatewayChargeResult struct {
	CheckoutURL string `json:"checkout_url,omitempty"` // Redirect URL for the async flow
	ChargeID    string `json:"charge_id,omitempty"`    // Gateway charge identifier for the sync flow
	Status      string `json:"status,omitempty"`       // succeeded or failed for the sync flow
}
