// Package smsgateway implements the outbound notification gateway as an HTTP
// client for an external SMS provider. Failures are classified for the
// worker: network errors, timeouts and 5xx responses are transient and
// retryable; 4xx responses mean the request itself is wrong and retrying
// won't help.
package smsgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client implements ports.NotificationGateway over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a gateway client for the provider at baseURL.
// A zero timeout falls back to the default.
func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// Send posts the notification to the provider. The context bounds the whole
// attempt; the worker supplies a per-attempt deadline.
func (c *Client) Send(ctx context.Context, job *notification.Job) error {
	body, err := json.Marshal(sendRequest{
		PhoneNumber: job.PhoneNumber,
		Message:     job.Payload(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.SendError{Permanent: false, Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &ports.SendError{
			Permanent: true,
			Cause:     fmt.Errorf("sms provider rejected the request: %s", resp.Status),
		}
	default:
		return &ports.SendError{
			Permanent: false,
			Cause:     fmt.Errorf("sms provider failed: %s", resp.Status),
		}
	}
}
