package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
)

// AdminLotTokener defines only the methods needed by this handler.
type AdminLotTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// LotLocker defines the interface that the service must implement.
type LotLocker interface {
	FreezeLot(ctx context.Context, actor models.Actor, lotID uuid.UUID) error
	UnfreezeLot(ctx context.Context, actor models.Actor, lotID uuid.UUID) error
}

// AdminLotResponse represents a successful lot lock change
// swagger:model AdminLotResponse
type AdminLotResponse struct {
	// Success message
	// default: Lot updated
	Message string `json:"message"`
}

// AdminLotErrorResponse represents an error response for lot administration
// swagger:model AdminLotErrorResponse
type AdminLotErrorResponse struct {
	// Error message
	// default: Lot not found
	Error string `json:"error"`
}

// NewAdminLotFreezeHandler returns an HTTP handler that locks a single lot.
// @Summary Lock lot
// @Description Excludes one lot from freeze allocation until it is unlocked.
// @Tags admin
// @Produce json
// @Param lotID path string true "Lot ID"
// @Success 200 {object} handlers.AdminLotResponse "Lot locked"
// @Failure 400 {object} handlers.AdminLotErrorResponse "Invalid lot id"
// @Failure 401 {object} handlers.AdminLotErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AdminLotErrorResponse "Lot not found"
// @Router /admin/lots/{lotID}/freeze [post]
// @Security BearerAuth
func NewAdminLotFreezeHandler(
	svc LotLocker,
	tokenGetter AdminLotTokener,
) http.HandlerFunc {
	return lotLockHandler(svc.FreezeLot, tokenGetter, "Lot locked")
}

// NewAdminLotUnfreezeHandler returns an HTTP handler that unlocks a single lot.
// @Summary Unlock lot
// @Description Returns one lot to freeze allocation.
// @Tags admin
// @Produce json
// @Param lotID path string true "Lot ID"
// @Success 200 {object} handlers.AdminLotResponse "Lot unlocked"
// @Failure 400 {object} handlers.AdminLotErrorResponse "Invalid lot id"
// @Failure 401 {object} handlers.AdminLotErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AdminLotErrorResponse "Lot not found"
// @Router /admin/lots/{lotID}/unfreeze [post]
// @Security BearerAuth
func NewAdminLotUnfreezeHandler(
	svc LotLocker,
	tokenGetter AdminLotTokener,
) http.HandlerFunc {
	return lotLockHandler(svc.UnfreezeLot, tokenGetter, "Lot unlocked")
}

func lotLockHandler(
	op func(ctx context.Context, actor models.Actor, lotID uuid.UUID) error,
	tokenGetter AdminLotTokener,
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminLotErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminLotErrorResponse{Error: "Unauthorized"})
			return
		}

		lotID, err := uuid.Parse(chi.URLParam(r, "lotID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminLotErrorResponse{Error: "Invalid lot id"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeOperator, ID: claims.UserID, IP: r.RemoteAddr}

		if err := op(ctx, actor, lotID); err != nil {
			logger.Log.Errorw("lot administration failed", "lotID", lotID, "error", err)
			if errors.Is(err, services.ErrLotNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminLotErrorResponse{Error: "Lot not found"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminLotErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminLotResponse{Message: message})
	}
}
