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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
)

func TestCheckoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	token := "valid-token"
	intentID := uuid.New()
	txnID := uuid.New()

	validBody := func() []byte {
		b, _ := json.Marshal(CheckoutRequest{
			OrderID:   "ord-1001",
			Amount:    decimal.NewFromInt(150),
			Currency:  models.USD,
			UseWallet: true,
		})
		return b
	}

	authOK := func(tok *MockCheckoutTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		tok.EXPECT().GetClaims(gomock.Any(), token).Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		body           []byte
		setupMocks     func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "split payment processed",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(&services.SplitPaymentResult{
						IntentID:      intentID,
						OrderID:       "ord-1001",
						WalletApplied: decimal.NewFromInt(100),
						GatewayAmount: decimal.NewFromInt(50),
						Channel:       models.PaymentChannelSplit,
						Status:        models.IntentStatusCompleted,
						TransactionID: txnID,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, intentID.String(), resp.IntentID)
				assert.Equal(t, txnID.String(), resp.TransactionID)
				assert.Equal(t, models.PaymentChannelSplit, resp.Channel)
				assert.True(t, resp.WalletApplied.Equal(decimal.NewFromInt(100)))
				assert.True(t, resp.GatewayAmount.Equal(decimal.NewFromInt(50)))
			},
		},
		{
			name: "gateway only omits transaction id",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(&services.SplitPaymentResult{
						IntentID:      intentID,
						OrderID:       "ord-1001",
						WalletApplied: decimal.Zero,
						GatewayAmount: decimal.NewFromInt(150),
						Channel:       models.PaymentChannelGateway,
						Status:        models.IntentStatusCompleted,
						TransactionID: uuid.Nil,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Empty(t, resp.TransactionID)
			},
		},
		{
			name: "unauthorized missing token",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           []byte("{not json"),
			setupMocks:     func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) { authOK(tok) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid amount",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wallet locked",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(nil, services.ErrWalletLocked)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "gateway charge failed",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(nil, services.ErrGatewayCharge)
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name: "reconciliation error",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(nil, &services.ReconciliationError{OrderID: "ord-1001", TransactionID: txnID, Err: errors.New("deduct failed")})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unexpected service error",
			body: validBody(),
			setupMocks: func(tok *MockCheckoutTokener, svc *MockCheckoutProcessor) {
				authOK(tok)
				svc.EXPECT().ProcessSplitPayment(gomock.Any(), gomock.Any(), userID, gomock.Any(), models.USD, "ord-1001", true).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockCheckoutTokener(ctrl)
			svc := NewMockCheckoutProcessor(ctrl)
			tt.setupMocks(tok, svc)

			handler := NewCheckoutHandler(svc, tok)

			req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
