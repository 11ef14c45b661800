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
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
)

func TestCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	token := "valid-token"

	validBody := func() []byte {
		b, _ := json.Marshal(CancelRequest{OrderID: "ord-1001"})
		return b
	}

	authOK := func(tok *MockCancelTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		tok.EXPECT().GetClaims(gomock.Any(), token).Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		body           []byte
		setupMocks     func(tok *MockCancelTokener, svc *MockCheckoutCanceler)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "successful cancellation",
			body: validBody(),
			setupMocks: func(tok *MockCancelTokener, svc *MockCheckoutCanceler) {
				authOK(tok)
				svc.EXPECT().CancelByOrder(gomock.Any(), gomock.Any(), userID, "ord-1001").
					Return(&services.ReleaseResult{Amount: decimal.NewFromInt(80)}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp CancelResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Checkout cancelled", resp.Message)
				assert.True(t, resp.ReleasedAmount.Equal(decimal.NewFromInt(80)))
			},
		},
		{
			name: "unauthorized missing token",
			body: validBody(),
			setupMocks: func(tok *MockCancelTokener, svc *MockCheckoutCanceler) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid order",
			body: validBody(),
			setupMocks: func(tok *MockCancelTokener, svc *MockCheckoutCanceler) {
				authOK(tok)
				svc.EXPECT().CancelByOrder(gomock.Any(), gomock.Any(), userID, "ord-1001").
					Return(nil, services.ErrInvalidOrder)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unexpected service error",
			body: validBody(),
			setupMocks: func(tok *MockCancelTokener, svc *MockCheckoutCanceler) {
				authOK(tok)
				svc.EXPECT().CancelByOrder(gomock.Any(), gomock.Any(), userID, "ord-1001").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockCancelTokener(ctrl)
			svc := NewMockCheckoutCanceler(ctrl)
			tt.setupMocks(tok, svc)

			handler := NewCancelHandler(svc, tok)

			req := httptest.NewRequest(http.MethodPost, "/checkout/cancel", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
