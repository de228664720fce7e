// Package wecom provides a client for sending WeChat Work application
// messages to corp members.
//
// It handles access-token acquisition and caching, and supports both
// plain text messages and template cards for high-severity alerts.
package wecom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const apiBase = "https://qyapi.weixin.qq.com/cgi-bin"

// Client represents a WeChat Work client bound to one application agent.
type Client struct {
	corpID     string
	corpSecret string
	agentID    int64
	client     *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewClient creates a new WeChat Work client for the given corp application.
func NewClient(corpID, corpSecret string, agentID int64) *Client {
	return &Client{
		corpID:     corpID,
		corpSecret: corpSecret,
		agentID:    agentID,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached access token, refreshing it when expired.
func (c *Client) token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	u := fmt.Sprintf("%s/gettoken?corpid=%s&corpsecret=%s",
		apiBase, url.QueryEscape(c.corpID), url.QueryEscape(c.corpSecret))

	resp, err := c.client.Get(u)
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	defer resp.Body.Close()

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	if out.ErrCode != 0 {
		return "", fmt.Errorf("wecom API error: %d %s", out.ErrCode, out.ErrMsg)
	}

	c.accessToken = out.AccessToken
	// Refresh one minute early to dodge expiry races.
	c.expiresAt = time.Now().Add(time.Duration(out.ExpiresIn-60) * time.Second)

	return c.accessToken, nil
}

type sendResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// post submits any message payload to the message/send endpoint.
func (c *Client) post(payload map[string]any) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/message/send?access_token=%s", apiBase, url.QueryEscape(token))

	resp, err := c.client.Post(u, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wecom API error: %s", resp.Status)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if out.ErrCode != 0 {
		return fmt.Errorf("wecom API error: %d %s", out.ErrCode, out.ErrMsg)
	}

	return nil
}

// SendText sends a plain text message to the given corp member.
func (c *Client) SendText(toUser, content string) error {
	return c.post(map[string]any{
		"touser":  toUser,
		"msgtype": "text",
		"agentid": c.agentID,
		"text":    map[string]any{"content": content},
	})
}

// SendTemplateCard sends a rich template card to the given corp member.
// The card payload is passed through to the API as-is.
func (c *Client) SendTemplateCard(toUser string, card map[string]any) error {
	return c.post(map[string]any{
		"touser":        toUser,
		"msgtype":       "template_card",
		"agentid":       c.agentID,
		"template_card": card,
	})
}
