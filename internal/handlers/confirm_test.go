package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
)

func TestConfirmHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	token := "valid-token"
	intentID := uuid.New()
	txnID := uuid.New()

	validBody := func() []byte {
		b, _ := json.Marshal(ConfirmRequest{
			OrderID:         "ord-1001",
			IntentID:        intentID.String(),
			GatewayChargeID: "ch_123",
		})
		return b
	}

	authOK := func(tok *MockConfirmTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		tok.EXPECT().GetClaims(gomock.Any(), token).Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		body           []byte
		setupMocks     func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler)
		expectedStatus int
	}{
		{
			name: "successful settlement",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unauthorized missing token",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid intent id",
			body: func() []byte {
				b, _ := json.Marshal(ConfirmRequest{OrderID: "ord-1001", IntentID: "not-a-uuid"})
				return b
			}(),
			setupMocks:     func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) { authOK(tok) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "intent not found",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(services.ErrIntentNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "intent already completed",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(services.ErrIntentNotSettleable)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "charge verification failed",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(services.ErrGatewayCharge)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name: "reconciliation required",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(&services.ReconciliationError{OrderID: "ord-1001", TransactionID: txnID, Err: errors.New("deduct failed")})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unexpected service error",
			body: validBody(),
			setupMocks: func(tok *MockConfirmTokener, svc *MockGatewayReturnSettler) {
				authOK(tok)
				svc.EXPECT().SettleGatewayReturn(gomock.Any(), gomock.Any(), userID, "ord-1001", intentID, "ch_123").
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockConfirmTokener(ctrl)
			svc := NewMockGatewayReturnSettler(ctrl)
			tt.setupMocks(tok, svc)

			handler := NewConfirmHandler(svc, tok)

			req := httptest.NewRequest(http.MethodPost, "/checkout/confirm", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp ConfirmResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Payment settled successfully", resp.Message)
			}
		})
	}
}
