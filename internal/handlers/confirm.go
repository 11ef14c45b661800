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
)

// ConfirmTokener defines only the methods needed by this handler.
type ConfirmTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// GatewayReturnSettler defines the interface that the service must implement.
type GatewayReturnSettler interface {
	SettleGatewayReturn(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string, intentID uuid.UUID, gatewayChargeID string) error
}

// ConfirmRequest represents the JSON body for confirming a gateway return.
// Settlement amounts come from the stored intent, not from this request.
// swagger:model ConfirmRequest
type ConfirmRequest struct {
	// Order identifier
	// required: true
	OrderID string `json:"order_id"`

	// Payment intent identifier
	// required: true
	IntentID string `json:"intent_id"`

	// Charge identifier reported by the gateway
	// required: true
	GatewayChargeID string `json:"gateway_charge_id"`
}

// ConfirmResponse represents a successful confirmation response
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	// Success message
	// default: Payment settled successfully
	Message string `json:"message"`
}

// ConfirmErrorResponse represents an error response for confirmation
// swagger:model ConfirmErrorResponse
type ConfirmErrorResponse struct {
	// Error message
	// default: Invalid confirmation request
	Error string `json:"error"`
}

// NewConfirmHandler returns an HTTP handler that settles a checkout after
// the customer returns from the gateway.
// @Summary Confirm gateway return
// @Description Finalizes the wallet leg of a split payment once the gateway reports a successful charge.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmRequest true "Confirm Request"
// @Success 200 {object} handlers.ConfirmResponse "Payment settled successfully"
// @Failure 400 {object} handlers.ConfirmErrorResponse "Invalid confirmation request"
// @Failure 401 {object} handlers.ConfirmErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.ConfirmErrorResponse "Gateway charge could not be verified"
// @Failure 404 {object} handlers.ConfirmErrorResponse "Payment intent not found"
// @Failure 409 {object} handlers.ConfirmErrorResponse "Settlement conflict"
// @Router /checkout/confirm [post]
// @Security BearerAuth
func NewConfirmHandler(
	svc GatewayReturnSettler,
	tokenGetter ConfirmTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode confirm request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Invalid request body"})
			return
		}

		intentID, err := uuid.Parse(req.IntentID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Invalid intent id"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		err = svc.SettleGatewayReturn(ctx, actor, claims.UserID, req.OrderID, intentID, req.GatewayChargeID)
		if err != nil {
			logger.Log.Errorw("gateway return settlement failed", "error", err)

			var recErr *services.ReconciliationError
			switch {
			case errors.As(err, &recErr):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Settlement requires manual reconciliation"})
			case errors.Is(err, services.ErrIntentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Payment intent not found"})
			case errors.Is(err, services.ErrIntentNotSettleable):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Payment intent is not awaiting settlement"})
			case errors.Is(err, services.ErrGatewayCharge):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Gateway charge could not be verified"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmResponse{Message: "Payment settled successfully"})
	}
}
