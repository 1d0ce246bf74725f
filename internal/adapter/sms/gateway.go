// Package sms delivers notification SMS through an HTTP gateway. Delivery
// is optional; the business runs email-only until a gateway is configured.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// GatewaySender implements port.SMSSender against a JSON HTTP gateway.
// Transient gateway failures are retried with backoff.
type GatewaySender struct {
	client *retryablehttp.Client
	url    string
	apiKey string
	sender string
}

// NewGatewaySender creates a sender. sender is the alphanumeric
// originator shown on the customer's phone.
func NewGatewaySender(url, apiKey, sender string) *GatewaySender {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &GatewaySender{
		client: client,
		url:    url,
		apiKey: apiKey,
		sender: sender,
	}
}

// Enabled reports whether a gateway is configured.
func (s *GatewaySender) Enabled() bool {
	return s.url != ""
}

// Send delivers one SMS. A non-2xx gateway response is an error.
func (s *GatewaySender) Send(ctx context.Context, to, message string) error {
	body, err := json.Marshal(map[string]string{
		"from": s.sender,
		"to":   to,
		"text": message,
	})
	if err != nil {
		return err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}

// Disabled is an SMSSender that never sends. It stands in when no
// gateway is configured.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Send(ctx context.Context, to, message string) error { return nil }
