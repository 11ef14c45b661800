package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// TopUpTokener defines only the methods needed by this handler.
type TopUpTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TopUpCreditor defines the interface that the service must implement.
type TopUpCreditor interface {
	Credit(ctx context.Context, actor models.Actor, userID uuid.UUID, baseAmount, bonusAmount decimal.Decimal, currency, source, refID string, expiresAt time.Time) (*services.TopUpResult, error)
}

// TopUpRequest represents the JSON body for topping up the wallet
// swagger:model TopUpRequest
type TopUpRequest struct {
	// Paid amount to credit
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Promotional bonus credited alongside the paid amount
	// default: 0.00
	BonusAmount decimal.Decimal `json:"bonus_amount"`

	// Currency
	// required: true
	// default: USD
	Currency string `json:"currency"`

	// Value origin: top_up, promo or gift_card
	// default: top_up
	Source string `json:"source"`

	// External payment reference for the credit
	RefID string `json:"ref_id"`

	// Calendar expiry of the credited value
	// required: true
	ExpiresAt time.Time `json:"expires_at"`
}

// TopUpResponse represents a successful top-up response
// swagger:model TopUpResponse
type TopUpResponse struct {
	// Success message
	// default: Wallet topped up successfully
	Message string `json:"message"`

	// Lot created for the credited value
	LotID string `json:"lot_id"`

	// New available balance
	TotalAvailable decimal.Decimal `json:"total_available"`
}

// TopUpErrorResponse represents an error response for top-up
// swagger:model TopUpErrorResponse
type TopUpErrorResponse struct {
	// Error message
	// default: Invalid amount or currency
	Error string `json:"error"`
}

// NewTopUpHandler returns an HTTP handler for crediting wallet value.
// @Summary Top up wallet
// @Description Credits the wallet with a new lot carrying its own expiry.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TopUpRequest true "Top Up Request"
// @Success 200 {object} handlers.TopUpResponse "Wallet topped up successfully"
// @Failure 400 {object} handlers.TopUpErrorResponse "Invalid amount or currency"
// @Failure 401 {object} handlers.TopUpErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.TopUpErrorResponse "Wallet is locked"
// @Router /wallet/topup [post]
// @Security BearerAuth
func NewTopUpHandler(
	svc TopUpCreditor,
	tokenGetter TopUpTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode top-up request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Source == "" {
			req.Source = models.LotSourceTopUp
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		result, err := svc.Credit(ctx, actor, claims.UserID, req.Amount, req.BonusAmount, req.Currency, req.Source, req.RefID, req.ExpiresAt)
		if err != nil {
			logger.Log.Errorw("top-up failed", "error", err)
			switch {
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrUnknownCurrency), errors.Is(err, services.ErrInvalidExpiry):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Invalid amount or currency"})
			case errors.Is(err, services.ErrWalletLocked):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Wallet is locked"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TopUpResponse{
			Message:        "Wallet topped up successfully",
			LotID:          result.Lot.LotID.String(),
			TotalAvailable: result.Wallet.TotalAvailable,
		})
	}
}
