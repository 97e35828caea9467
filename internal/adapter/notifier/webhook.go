package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
)

const webhookTimeout = 5 * time.Second

// WebhookNotifier posts transfer events to a configured URL. Slow or broken
// receivers only cost the notification, never the transfer.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

type transferEvent struct {
	EventID   string    `json:"eventId"`
	AccountID string    `json:"accountId"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

func (n *WebhookNotifier) NotifyAboutTransfer(ctx context.Context, account domain.Account, message string) error {
	event := transferEvent{
		EventID:   uuid.NewString(),
		AccountID: account.ID,
		Message:   message,
		SentAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
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
		return fmt.Errorf("notification receiver returned status %d", resp.StatusCode)
	}
	return nil
}
