package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// InboxWriter persists in-app inbox rows. Implemented by the delivery
// repository.
type InboxWriter interface {
	CreateInboxNotification(ctx context.Context, n model.InboxNotification) error
}

// SystemHandler delivers notifications to the in-app inbox. It is always
// enabled: the inbox is the fallback every other channel degrades to.
type SystemHandler struct {
	inbox InboxWriter
}

func NewSystemHandler(inbox InboxWriter) *SystemHandler {
	return &SystemHandler{inbox: inbox}
}

func (h *SystemHandler) Name() model.Channel { return model.ChannelSystem }

func (h *SystemHandler) Enabled() bool { return true }

func (h *SystemHandler) Send(ctx context.Context, req model.DeliveryRequest, _ string) model.ChannelResult {
	now := time.Now()

	err := h.inbox.CreateInboxNotification(ctx, model.InboxNotification{
		UserID:    req.RecipientID,
		Kind:      req.Kind,
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		Link:      req.Link,
		CreatedAt: now,
	})
	if err != nil {
		return model.Failed(model.ChannelSystem, fmt.Errorf("write inbox row: %w", err))
	}

	return model.Sent(model.ChannelSystem, now)
}
