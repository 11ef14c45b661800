package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// CheckoutTokener defines only the methods needed by this handler.
type CheckoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CheckoutProcessor defines the interface that the service must implement.
type CheckoutProcessor interface {
	ProcessSplitPayment(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, currency, orderID string, useWallet bool) (*services.SplitPaymentResult, error)
}

// CheckoutRequest represents the JSON body for starting a checkout
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	// Order identifier
	// required: true
	// default: ord-1001
	OrderID string `json:"order_id"`

	// Total order amount
	// required: true
	// default: 150.00
	Amount decimal.Decimal `json:"amount"`

	// Order currency
	// required: true
	// default: USD
	Currency string `json:"currency"`

	// Apply wallet balance before charging the gateway
	// default: true
	UseWallet bool `json:"use_wallet"`
}

// CheckoutResponse represents a successful checkout response
// swagger:model CheckoutResponse
type CheckoutResponse struct {
	// Payment intent identifier
	IntentID string `json:"intent_id"`

	// Amount settled from wallet value
	WalletApplied decimal.Decimal `json:"wallet_applied"`

	// Amount routed to the payment gateway
	GatewayAmount decimal.Decimal `json:"gateway_amount"`

	// Payment channel: wallet, gateway or split
	Channel string `json:"channel"`

	// Intent status after processing
	Status string `json:"status"`

	// Redirect URL when the gateway flow is asynchronous
	CheckoutURL string `json:"checkout_url,omitempty"`

	// Wallet freeze transaction, empty when no wallet value was applied
	TransactionID string `json:"transaction_id,omitempty"`
}

// CheckoutErrorResponse represents an error response for checkout
// swagger:model CheckoutErrorResponse
type CheckoutErrorResponse struct {
	// Error message
	// default: Invalid amount or order
	Error string `json:"error"`
}

// NewCheckoutHandler returns an HTTP handler that starts a split payment.
// @Summary Start checkout
// @Description Freezes wallet value for the order and charges the remainder through the payment gateway.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body handlers.CheckoutRequest true "Checkout Request"
// @Success 200 {object} handlers.CheckoutResponse "Checkout processed"
// @Failure 400 {object} handlers.CheckoutErrorResponse "Invalid amount or order"
// @Failure 401 {object} handlers.CheckoutErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.CheckoutErrorResponse "Gateway charge failed"
// @Failure 409 {object} handlers.CheckoutErrorResponse "Wallet is locked"
// @Router /checkout [post]
// @Security BearerAuth
func NewCheckoutHandler(
	svc CheckoutProcessor,
	tokenGetter CheckoutTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode checkout request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Invalid request body"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		result, err := svc.ProcessSplitPayment(ctx, actor, claims.UserID, req.Amount, req.Currency, req.OrderID, req.UseWallet)
		if err != nil {
			writeCheckoutError(w, err)
			return
		}

		resp := CheckoutResponse{
			IntentID:      result.IntentID.String(),
			WalletApplied: result.WalletApplied,
			GatewayAmount: result.GatewayAmount,
			Channel:       result.Channel,
			Status:        result.Status,
			CheckoutURL:   result.CheckoutURL,
		}
		if result.TransactionID != uuid.Nil {
			resp.TransactionID = result.TransactionID.String()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("checkout failed", "error", err)

	var recErr *services.ReconciliationError

	switch {
	case errors.Is(err, services.ErrInvalidOrder), errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrUnsupportedCurrency):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Invalid amount or order"})
	case errors.Is(err, services.ErrWalletLocked):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Wallet is locked"})
	case errors.As(err, &recErr):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Settlement requires manual reconciliation"})
	case errors.Is(err, services.ErrGatewayCharge):
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Gateway charge failed"})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Internal server error"})
	}
}
