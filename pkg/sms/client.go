// Package sms provides a thin client for an HTTP SMS gateway.
//
// The gateway accepts a JSON POST with an API key, a provider-registered
// signature and the message text, and answers with a JSON status.
package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents an SMS gateway client.
type Client struct {
	endpoint string
	apiKey   string
	sign     string
	client   *http.Client
}

// NewClient creates a new SMS gateway client.
func NewClient(endpoint, apiKey, sign string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		sign:     sign,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	APIKey  string `json:"api_key"`
	Sign    string `json:"sign"`
	Phone   string `json:"phone"`
	Content string `json:"content"`
}

type sendResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send submits a short text message to the given phone number.
//
// It returns an error if the request fails or the gateway responds with a
// non-zero status code.
func (c *Client) Send(phone, content string) error {
	reqBody := sendRequest{
		APIKey:  c.apiKey,
		Sign:    c.sign,
		Phone:   phone,
		Content: content,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.endpoint, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if out.Code != 0 {
		return fmt.Errorf("sms gateway rejected message: %d %s", out.Code, out.Message)
	}

	return nil
}
