package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
)

func TestTopUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	token := "valid-token"
	lotID := uuid.New()
	expiry := time.Now().Add(365 * 24 * time.Hour).UTC().Truncate(time.Second)

	validBody := func() []byte {
		b, _ := json.Marshal(TopUpRequest{
			Amount:      decimal.NewFromInt(100),
			BonusAmount: decimal.NewFromInt(10),
			Currency:    models.USD,
			Source:      models.LotSourcePromo,
			RefID:       "promo-42",
			ExpiresAt:   expiry,
		})
		return b
	}

	authOK := func(tok *MockTopUpTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		tok.EXPECT().GetClaims(gomock.Any(), token).Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		body           []byte
		setupMocks     func(tok *MockTopUpTokener, svc *MockTopUpCreditor)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name: "successful top-up",
			body: validBody(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				authOK(tok)
				svc.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), models.USD, models.LotSourcePromo, "promo-42", gomock.Any()).
					Return(&services.TopUpResult{
						Wallet: &models.WalletDB{
							UserID:         userID,
							Currency:       models.USD,
							TotalAvailable: decimal.NewFromInt(110),
						},
						Lot: &models.WalletLotDB{LotID: lotID, UserID: userID},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp TopUpResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Wallet topped up successfully", resp.Message)
				assert.Equal(t, lotID.String(), resp.LotID)
				assert.True(t, resp.TotalAvailable.Equal(decimal.NewFromInt(110)))
			},
		},
		{
			name: "empty source defaults to top_up",
			body: func() []byte {
				b, _ := json.Marshal(TopUpRequest{
					Amount:    decimal.NewFromInt(50),
					Currency:  models.USD,
					ExpiresAt: expiry,
				})
				return b
			}(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				authOK(tok)
				svc.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), models.USD, models.LotSourceTopUp, "", gomock.Any()).
					Return(&services.TopUpResult{
						Wallet: &models.WalletDB{TotalAvailable: decimal.NewFromInt(50)},
						Lot:    &models.WalletLotDB{LotID: lotID},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unauthorized missing token",
			body: validBody(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid amount",
			body: validBody(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				authOK(tok)
				svc.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), models.USD, models.LotSourcePromo, "promo-42", gomock.Any()).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wallet locked",
			body: validBody(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				authOK(tok)
				svc.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), models.USD, models.LotSourcePromo, "promo-42", gomock.Any()).
					Return(nil, services.ErrWalletLocked)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unexpected service error",
			body: validBody(),
			setupMocks: func(tok *MockTopUpTokener, svc *MockTopUpCreditor) {
				authOK(tok)
				svc.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), models.USD, models.LotSourcePromo, "promo-42", gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockTopUpTokener(ctrl)
			svc := NewMockTopUpCreditor(ctrl)
			tt.setupMocks(tok, svc)

			handler := NewTopUpHandler(svc, tok)

			req := httptest.NewRequest(http.MethodPost, "/wallet/topup", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
