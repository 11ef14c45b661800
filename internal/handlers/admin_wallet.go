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
)

// AdminWalletTokener defines only the methods needed by this handler.
type AdminWalletTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletLocker defines the interface that the service must implement.
type WalletLocker interface {
	FreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID, reason, notes string) (*models.WalletLockDB, error)
	TemporaryFreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID, reason, notes string, expiresAt time.Time) (*models.WalletLockDB, error)
	UnfreezeWallet(ctx context.Context, actor models.Actor, userID uuid.UUID) error
}

// AdminWalletFreezeRequest represents the JSON body for locking a wallet
// swagger:model AdminWalletFreezeRequest
type AdminWalletFreezeRequest struct {
	// User whose wallet is locked
	// required: true
	UserID string `json:"user_id"`

	// Reason for the lock
	// required: true
	// default: fraud_review
	Reason string `json:"reason"`

	// Free-form operator notes
	Notes string `json:"notes"`

	// When set, the lock lifts automatically at this time
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AdminWalletFreezeResponse represents a successful wallet lock response
// swagger:model AdminWalletFreezeResponse
type AdminWalletFreezeResponse struct {
	// Success message
	// default: Wallet locked
	Message string `json:"message"`

	// Lock identifier
	LockID string `json:"lock_id"`
}

// AdminWalletErrorResponse represents an error response for wallet administration
// swagger:model AdminWalletErrorResponse
type AdminWalletErrorResponse struct {
	// Error message
	// default: Wallet not found
	Error string `json:"error"`
}

// NewAdminWalletFreezeHandler returns an HTTP handler that locks a wallet.
// @Summary Lock wallet
// @Description Locks the user's wallet and all of its lots, permanently or until the given expiry.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminWalletFreezeRequest true "Wallet Freeze Request"
// @Success 200 {object} handlers.AdminWalletFreezeResponse "Wallet locked"
// @Failure 400 {object} handlers.AdminWalletErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AdminWalletErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AdminWalletErrorResponse "Wallet not found"
// @Router /admin/wallets/freeze [post]
// @Security BearerAuth
func NewAdminWalletFreezeHandler(
	svc WalletLocker,
	tokenGetter AdminWalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := adminClaims(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req AdminWalletFreezeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode wallet freeze request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Invalid user id"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeOperator, ID: claims.UserID, IP: r.RemoteAddr}

		var lock *models.WalletLockDB
		if req.ExpiresAt != nil {
			lock, err = svc.TemporaryFreezeWallet(ctx, actor, userID, req.Reason, req.Notes, *req.ExpiresAt)
		} else {
			lock, err = svc.FreezeWallet(ctx, actor, userID, req.Reason, req.Notes)
		}
		if err != nil {
			writeAdminWalletError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminWalletFreezeResponse{
			Message: "Wallet locked",
			LockID:  lock.LockID.String(),
		})
	}
}

// AdminWalletUnfreezeRequest represents the JSON body for unlocking a wallet
// swagger:model AdminWalletUnfreezeRequest
type AdminWalletUnfreezeRequest struct {
	// User whose wallet is unlocked
	// required: true
	UserID string `json:"user_id"`
}

// AdminWalletUnfreezeResponse represents a successful wallet unlock response
// swagger:model AdminWalletUnfreezeResponse
type AdminWalletUnfreezeResponse struct {
	// Success message
	// default: Wallet unlocked
	Message string `json:"message"`
}

// NewAdminWalletUnfreezeHandler returns an HTTP handler that unlocks a wallet.
// @Summary Unlock wallet
// @Description Resolves all active locks on the user's wallet and reactivates its lots.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminWalletUnfreezeRequest true "Wallet Unfreeze Request"
// @Success 200 {object} handlers.AdminWalletUnfreezeResponse "Wallet unlocked"
// @Failure 400 {object} handlers.AdminWalletErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AdminWalletErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AdminWalletErrorResponse "Wallet not found"
// @Router /admin/wallets/unfreeze [post]
// @Security BearerAuth
func NewAdminWalletUnfreezeHandler(
	svc WalletLocker,
	tokenGetter AdminWalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := adminClaims(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req AdminWalletUnfreezeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode wallet unfreeze request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Invalid user id"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeOperator, ID: claims.UserID, IP: r.RemoteAddr}

		if err := svc.UnfreezeWallet(ctx, actor, userID); err != nil {
			writeAdminWalletError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminWalletUnfreezeResponse{Message: "Wallet unlocked"})
	}
}

func adminClaims(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter AdminWalletTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

func writeAdminWalletError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("wallet administration failed", "error", err)

	switch {
	case errors.Is(err, services.ErrWalletNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Wallet not found"})
	case errors.Is(err, services.ErrInvalidExpiry):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Invalid expiry"})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AdminWalletErrorResponse{Error: "Internal server error"})
	}
}
