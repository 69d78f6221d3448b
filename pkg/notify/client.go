package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smart_canteen/internal/models"
)

// Client posts order lifecycle events to a configured webhook, so a kitchen
// display or chat integration can react without polling. A nil Client is
// valid and drops every event.
type Client struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Event is the JSON payload sent to the webhook.
type Event struct {
	Type        string             `json:"type"` // order_placed | order_status_changed
	OrderID     string             `json:"order_id"`
	OrderNumber int                `json:"order_number"`
	Status      models.OrderStatus `json:"status"`
	Total       int64              `json:"total"`
	Timestamp   time.Time          `json:"timestamp"`
}

func NewClient(webhookURL string) *Client {
	return &Client{
		WebhookURL: webhookURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// OrderPlaced notifies the webhook that a new order exists.
func (c *Client) OrderPlaced(ctx context.Context, order models.Order) error {
	return c.send(ctx, Event{
		Type:        "order_placed",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   time.Now(),
	})
}

// StatusChanged notifies the webhook that an order moved to a new status.
func (c *Client) StatusChanged(ctx context.Context, order models.Order) error {
	return c.send(ctx, Event{
		Type:        "order_status_changed",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   time.Now(),
	})
}

func (c *Client) send(ctx context.Context, event Event) error {
	if c == nil || c.WebhookURL == "" {
		return nil
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
