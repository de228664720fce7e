package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// Chat is the enterprise-IM contract, implemented by pkg/wecom.
type Chat interface {
	SendText(toUser, content string) error
	SendTemplateCard(toUser string, card map[string]any) error
}

// WecomHandler delivers notifications to WeChat Work corp members.
// Requests carrying a card payload go out as template cards; everything
// else as plain text.
type WecomHandler struct {
	chat    Chat
	enabled bool
}

func NewWecomHandler(chat Chat, enabled bool) *WecomHandler {
	return &WecomHandler{chat: chat, enabled: enabled}
}

func (h *WecomHandler) Name() model.Channel { return model.ChannelWecom }

func (h *WecomHandler) Enabled() bool { return h.enabled }

func (h *WecomHandler) Send(_ context.Context, req model.DeliveryRequest, target string) model.ChannelResult {
	if !h.enabled {
		return model.Rejected(model.ChannelWecom, ErrDisabled)
	}

	var err error
	if req.Card != nil {
		err = h.chat.SendTemplateCard(target, req.Card)
	} else {
		content := fmt.Sprintf("%s\n%s", req.Title, req.Content)
		if req.Link != "" {
			content += "\n" + req.Link
		}
		err = h.chat.SendText(target, content)
	}

	if err != nil {
		return model.Failed(model.ChannelWecom, fmt.Errorf("wecom send: %w", err))
	}

	return model.Sent(model.ChannelWecom, time.Now())
}
