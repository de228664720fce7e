package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// WebhookHandler posts a JSON envelope to the recipient's configured URL.
//
// When the request carries a structured card payload it is forwarded
// as-is; otherwise a plain text envelope is sent. The HTTP call is bounded
// by a short timeout so one slow endpoint cannot stall the worker.
type WebhookHandler struct {
	client  *http.Client
	timeout time.Duration
	enabled bool
}

func NewWebhookHandler(enabled bool, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		enabled: enabled,
	}
}

func (h *WebhookHandler) Name() model.Channel { return model.ChannelWebhook }

func (h *WebhookHandler) Enabled() bool { return h.enabled }

func (h *WebhookHandler) Send(ctx context.Context, req model.DeliveryRequest, target string) model.ChannelResult {
	if !h.enabled {
		return model.Rejected(model.ChannelWebhook, ErrDisabled)
	}

	var payload any
	if req.Card != nil {
		payload = req.Card
	} else {
		payload = map[string]any{
			"msgtype": "text",
			"text": map[string]any{
				"content": fmt.Sprintf("%s\n%s", req.Title, req.Content),
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return model.Failed(model.ChannelWebhook, fmt.Errorf("marshal payload: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return model.Failed(model.ChannelWebhook, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return model.Failed(model.ChannelWebhook, fmt.Errorf("post webhook: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Failed(model.ChannelWebhook, fmt.Errorf("webhook returned %s", resp.Status))
	}

	return model.Sent(model.ChannelWebhook, time.Now())
}
