package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletBalanceReader defines the wallet lookup the handler needs.
type WalletBalanceReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// LotBalanceReader defines the lot listing the handler needs.
type LotBalanceReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error)
}

// LotBalance represents one lot in the balance breakdown
// swagger:model LotBalance
type LotBalance struct {
	// Lot identifier
	LotID string `json:"lot_id"`

	// Where the value came from
	Source string `json:"source"`

	// Unspent value
	Remaining decimal.Decimal `json:"remaining"`

	// Lot currency
	Currency string `json:"currency"`

	// Lot is held by an account or dispute lock
	Locked bool `json:"locked"`

	// Calendar expiry of the value
	ExpiresAt time.Time `json:"expires_at"`
}

// BalanceResponse represents the wallet balance with its lot breakdown
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet currency
	Currency string `json:"currency"`

	// Amount available for spending
	TotalAvailable decimal.Decimal `json:"total_available"`

	// Amount reserved by in-flight freezes
	TotalFrozen decimal.Decimal `json:"total_frozen"`

	// Wallet status: active or locked
	Status string `json:"status"`

	// Lots backing the balance
	Lots []LotBalance `json:"lots"`
}

// BalanceErrorResponse represents an error response for balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for reading the wallet balance.
// @Summary Get wallet balance
// @Description Returns the wallet totals together with the lots backing them.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewBalanceHandler(
	wallets WalletBalanceReader,
	lots LotBalanceReader,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		wallet, err := wallets.GetByUserID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// No wallet yet means an empty balance, not an error.
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(BalanceResponse{
					TotalAvailable: decimal.Zero,
					TotalFrozen:    decimal.Zero,
					Status:         models.WalletStatusActive,
					Lots:           []LotBalance{},
				})
				return
			}
			logger.Log.Errorw("failed to read wallet", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		lotRows, err := lots.ListByUserID(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to read lots", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		resp := BalanceResponse{
			Currency:       wallet.Currency,
			TotalAvailable: wallet.TotalAvailable,
			TotalFrozen:    wallet.TotalFrozen,
			Status:         wallet.Status,
			Lots:           make([]LotBalance, 0, len(lotRows)),
		}
		for _, lot := range lotRows {
			resp.Lots = append(resp.Lots, LotBalance{
				LotID:     lot.LotID.String(),
				Source:    lot.Source,
				Remaining: lot.Remaining,
				Currency:  lot.Currency,
				Locked:    lot.Held(),
				ExpiresAt: lot.ExpiresAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
