// Package notifier posts notifications to the notification service.
// Dispatch is best effort: the order and wallet transactions never wait
// on it and never roll back because of it.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
)

type HTTPNotifier struct {
	address string
	client  *http.Client
}

func NewHTTPNotifier(address string) *HTTPNotifier {
	return &HTTPNotifier{
		address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type notificationPayload struct {
	UserID int64          `json:"user_id"`
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data,omitempty"`
}

func (n *HTTPNotifier) Send(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(notificationPayload{
		UserID: notification.UserID,
		Type:   notification.Type,
		Title:  notification.Title,
		Body:   notification.Body,
		Data:   notification.Data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.address+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
