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

// CancelTokener defines only the methods needed by this handler.
type CancelTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CheckoutCanceler defines the interface that the service must implement.
type CheckoutCanceler interface {
	CancelByOrder(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string) (*services.ReleaseResult, error)
}

// CancelRequest represents the JSON body for cancelling a checkout
// swagger:model CancelRequest
type CancelRequest struct {
	// Order identifier
	// required: true
	// default: ord-1001
	OrderID string `json:"order_id"`
}

// CancelResponse represents a successful cancellation response
// swagger:model CancelResponse
type CancelResponse struct {
	// Success message
	// default: Checkout cancelled
	Message string `json:"message"`

	// Amount returned to the available balance
	ReleasedAmount decimal.Decimal `json:"released_amount"`
}

// CancelErrorResponse represents an error response for cancellation
// swagger:model CancelErrorResponse
type CancelErrorResponse struct {
	// Error message
	// default: Invalid order
	Error string `json:"error"`
}

// NewCancelHandler returns an HTTP handler that releases a checkout's
// frozen wallet value.
// @Summary Cancel checkout
// @Description Releases every frozen reservation held for the order back to the available balance.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body handlers.CancelRequest true "Cancel Request"
// @Success 200 {object} handlers.CancelResponse "Checkout cancelled"
// @Failure 400 {object} handlers.CancelErrorResponse "Invalid order"
// @Failure 401 {object} handlers.CancelErrorResponse "Unauthorized"
// @Router /checkout/cancel [post]
// @Security BearerAuth
func NewCancelHandler(
	svc CheckoutCanceler,
	tokenGetter CancelTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CancelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode cancel request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Invalid request body"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		result, err := svc.CancelByOrder(ctx, actor, claims.UserID, req.OrderID)
		if err != nil {
			logger.Log.Errorw("checkout cancellation failed", "error", err)
			if errors.Is(err, services.ErrInvalidOrder) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Invalid order"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelResponse{
			Message:        "Checkout cancelled",
			ReleasedAmount: result.Amount,
		})
	}
}
