package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// GatewayHTTPFacade talks to the external payment gateway over its JSON API.
type GatewayHTTPFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGatewayHTTPFacade creates a new facade for the gateway at baseURL.
func NewGatewayHTTPFacade(baseURL, apiKey string, timeout time.Duration) *GatewayHTTPFacade {
	return &GatewayHTTPFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Charge submits the remainder leg of a split payment to the gateway.
func (f *GatewayHTTPFacade) Charge(ctx context.Context, req models.GatewayChargeRequest) (*models.GatewayChargeResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("gateway charge request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Errorw("gateway charge rejected", "status", resp.StatusCode, "body", string(data))
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var result models.GatewayChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyCharge fetches the gateway's record of an existing charge. Callers
// settling on a reported charge id must confirm it here rather than trust
// the report.
func (f *GatewayHTTPFacade) VerifyCharge(ctx context.Context, chargeID string) (*models.GatewayChargeResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/v1/charges/"+chargeID, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("gateway charge lookup failed", "chargeID", chargeID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var result models.GatewayChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SupportedCurrencyCodes fetches the currencies the gateway can charge in.
func (f *GatewayHTTPFacade) SupportedCurrencyCodes(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/v1/currencies", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("gateway currency listing failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var payload struct {
		Currencies []string `json:"currencies"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Currencies, nil
}
