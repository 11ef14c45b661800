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

// DisputeTokener defines only the methods needed by this handler.
type DisputeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DisputeEscrow defines the interface that the service must implement.
type DisputeEscrow interface {
	OpenDispute(ctx context.Context, actor models.Actor, userID, transactionID uuid.UUID, reason string) (*models.DisputeDB, error)
	AddEvidence(ctx context.Context, actor models.Actor, disputeID uuid.UUID, fileName, fileURL string) (*models.DisputeEvidenceDB, error)
	ResolveDispute(ctx context.Context, actor models.Actor, disputeID uuid.UUID, resolution string) (*models.DisputeDB, error)
}

// OpenDisputeRequest represents the JSON body for opening a dispute
// swagger:model OpenDisputeRequest
type OpenDisputeRequest struct {
	// Transaction under dispute
	// required: true
	TransactionID string `json:"transaction_id"`

	// Why the transaction is disputed
	// required: true
	// default: item not received
	Reason string `json:"reason"`
}

// DisputeResponse represents a dispute state
// swagger:model DisputeResponse
type DisputeResponse struct {
	// Dispute identifier
	DisputeID string `json:"dispute_id"`

	// Transaction under dispute
	TransactionID string `json:"transaction_id"`

	// Dispute status
	Status string `json:"status"`
}

// DisputeErrorResponse represents an error response for disputes
// swagger:model DisputeErrorResponse
type DisputeErrorResponse struct {
	// Error message
	// default: Dispute not found
	Error string `json:"error"`
}

// NewOpenDisputeHandler returns an HTTP handler that opens a dispute.
// @Summary Open dispute
// @Description Opens a dispute against a completed debit transaction and locks the lots it consumed.
// @Tags disputes
// @Accept json
// @Produce json
// @Param request body handlers.OpenDisputeRequest true "Open Dispute Request"
// @Success 200 {object} handlers.DisputeResponse "Dispute opened"
// @Failure 400 {object} handlers.DisputeErrorResponse "Transaction cannot be disputed"
// @Failure 401 {object} handlers.DisputeErrorResponse "Unauthorized"
// @Router /disputes [post]
// @Security BearerAuth
func NewOpenDisputeHandler(
	svc DisputeEscrow,
	tokenGetter DisputeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := disputeClaims(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req OpenDisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode open dispute request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid request body"})
			return
		}

		transactionID, err := uuid.Parse(req.TransactionID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid transaction id"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		dispute, err := svc.OpenDispute(ctx, actor, claims.UserID, transactionID, req.Reason)
		if err != nil {
			logger.Log.Errorw("failed to open dispute", "error", err)
			if errors.Is(err, services.ErrTransactionNotDisputable) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Transaction cannot be disputed"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DisputeResponse{
			DisputeID:     dispute.DisputeID.String(),
			TransactionID: dispute.TransactionID.String(),
			Status:        dispute.Status,
		})
	}
}

// DisputeEvidenceRequest represents the JSON body for attaching evidence
// swagger:model DisputeEvidenceRequest
type DisputeEvidenceRequest struct {
	// Original file name
	// required: true
	FileName string `json:"file_name"`

	// Storage location of the file
	// required: true
	FileURL string `json:"file_url"`
}

// DisputeEvidenceResponse represents a stored evidence record
// swagger:model DisputeEvidenceResponse
type DisputeEvidenceResponse struct {
	// Evidence identifier
	EvidenceID string `json:"evidence_id"`

	// Success message
	// default: Evidence attached
	Message string `json:"message"`
}

// NewDisputeEvidenceHandler returns an HTTP handler that attaches evidence
// to an open dispute.
// @Summary Attach dispute evidence
// @Description Stores file metadata for an open dispute.
// @Tags disputes
// @Accept json
// @Produce json
// @Param disputeID path string true "Dispute ID"
// @Param request body handlers.DisputeEvidenceRequest true "Evidence Request"
// @Success 200 {object} handlers.DisputeEvidenceResponse "Evidence attached"
// @Failure 400 {object} handlers.DisputeErrorResponse "Invalid request"
// @Failure 401 {object} handlers.DisputeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DisputeErrorResponse "Dispute not found"
// @Router /disputes/{disputeID}/evidence [post]
// @Security BearerAuth
func NewDisputeEvidenceHandler(
	svc DisputeEscrow,
	tokenGetter DisputeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := disputeClaims(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		disputeID, err := uuid.Parse(chi.URLParam(r, "disputeID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid dispute id"})
			return
		}

		var req DisputeEvidenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode evidence request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.FileName == "" || req.FileURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "File name and URL are required"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeUser, ID: claims.UserID, IP: r.RemoteAddr}

		evidence, err := svc.AddEvidence(ctx, actor, disputeID, req.FileName, req.FileURL)
		if err != nil {
			logger.Log.Errorw("failed to attach evidence", "disputeID", disputeID, "error", err)
			if errors.Is(err, services.ErrDisputeNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Dispute not found"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DisputeEvidenceResponse{
			EvidenceID: evidence.EvidenceID.String(),
			Message:    "Evidence attached",
		})
	}
}

// ResolveDisputeRequest represents the JSON body for resolving a dispute
// swagger:model ResolveDisputeRequest
type ResolveDisputeRequest struct {
	// Resolution: dismiss, refund or cancel
	// required: true
	// default: dismiss
	Resolution string `json:"resolution"`
}

// NewResolveDisputeHandler returns an HTTP handler that resolves a dispute.
// @Summary Resolve dispute
// @Description Closes an open dispute, unlocks the held lots and, for a refund, credits the disputed amount back.
// @Tags disputes
// @Accept json
// @Produce json
// @Param disputeID path string true "Dispute ID"
// @Param request body handlers.ResolveDisputeRequest true "Resolve Dispute Request"
// @Success 200 {object} handlers.DisputeResponse "Dispute resolved"
// @Failure 400 {object} handlers.DisputeErrorResponse "Unknown resolution"
// @Failure 401 {object} handlers.DisputeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DisputeErrorResponse "Dispute not found"
// @Router /admin/disputes/{disputeID}/resolve [post]
// @Security BearerAuth
func NewResolveDisputeHandler(
	svc DisputeEscrow,
	tokenGetter DisputeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := disputeClaims(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		disputeID, err := uuid.Parse(chi.URLParam(r, "disputeID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid dispute id"})
			return
		}

		var req ResolveDisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode resolve request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Invalid request body"})
			return
		}

		actor := models.Actor{Type: models.ActorTypeOperator, ID: claims.UserID, IP: r.RemoteAddr}

		dispute, err := svc.ResolveDispute(ctx, actor, disputeID, req.Resolution)
		if err != nil {
			logger.Log.Errorw("failed to resolve dispute", "disputeID", disputeID, "error", err)
			switch {
			case errors.Is(err, services.ErrUnknownResolution):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Unknown resolution"})
			case errors.Is(err, services.ErrDisputeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Dispute not found"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DisputeResponse{
			DisputeID:     dispute.DisputeID.String(),
			TransactionID: dispute.TransactionID.String(),
			Status:        dispute.Status,
		})
	}
}

func disputeClaims(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter DisputeTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(DisputeErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}
