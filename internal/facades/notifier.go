package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
)

// NotifierHTTPFacade posts user notifications to the notification
// collaborator's webhook. Callers treat delivery as best-effort.
type NotifierHTTPFacade struct {
	webhookURL string
	client     *http.Client
}

// NewNotifierHTTPFacade creates a new facade for the webhook at webhookURL.
func NewNotifierHTTPFacade(webhookURL string, timeout time.Duration) *NotifierHTTPFacade {
	return &NotifierHTTPFacade{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
	}
}

// Notify delivers one event for the given user.
func (f *NotifierHTTPFacade) Notify(ctx context.Context, userID uuid.UUID, event string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"user_id": userID,
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("notification delivery failed", "event", event, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}
	return nil
}
