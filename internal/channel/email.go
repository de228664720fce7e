package channel

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// Mailer is the SMTP submission contract, implemented by pkg/email.
type Mailer interface {
	Send(to, subject, textBody, htmlBody string) error
}

// EmailHandler delivers notifications over SMTP.
type EmailHandler struct {
	mailer  Mailer
	enabled bool
}

func NewEmailHandler(mailer Mailer, enabled bool) *EmailHandler {
	return &EmailHandler{mailer: mailer, enabled: enabled}
}

func (h *EmailHandler) Name() model.Channel { return model.ChannelEmail }

func (h *EmailHandler) Enabled() bool { return h.enabled }

func (h *EmailHandler) Send(_ context.Context, req model.DeliveryRequest, target string) model.ChannelResult {
	if !h.enabled {
		return model.Rejected(model.ChannelEmail, ErrDisabled)
	}

	subject := fmt.Sprintf("[%s] %s", req.Category, req.Title)

	// Title, content and link are caller-supplied and must not inject
	// markup into the HTML part.
	htmlBody := fmt.Sprintf("<h3>%s</h3><p>%s</p>",
		html.EscapeString(req.Title), html.EscapeString(req.Content))
	if req.Link != "" {
		htmlBody += fmt.Sprintf(`<p><a href="%s">View details</a></p>`, html.EscapeString(req.Link))
	}

	if err := h.mailer.Send(target, subject, req.Content, htmlBody); err != nil {
		return model.Failed(model.ChannelEmail, fmt.Errorf("smtp send: %w", err))
	}

	return model.Sent(model.ChannelEmail, time.Now())
}
