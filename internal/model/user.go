package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the account record the delivery engine needs.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WecomUserID string `json:"wecom_user_id"`
	Active      bool   `json:"active"`
}

// RecipientPreference holds a user's per-channel notification settings.
// Owned by account settings; read-only to the delivery engine.
type RecipientPreference struct {
	UserID         int64  `json:"user_id"`
	SystemEnabled  bool   `json:"system_enabled"`
	EmailEnabled   bool   `json:"email_enabled"`
	SMSEnabled     bool   `json:"sms_enabled"`
	WecomEnabled   bool   `json:"wecom_enabled"`
	WebhookEnabled bool   `json:"webhook_enabled"`
	WebhookURL     string `json:"webhook_url,omitempty"`

	// Quiet hours as local "HH:MM"; start > end means the window wraps
	// past midnight. Both empty means no quiet hours.
	QuietStart string `json:"quiet_start,omitempty"`
	QuietEnd   string `json:"quiet_end,omitempty"`
}

// ChannelEnabled reports whether the user opted in to ch. A missing
// preference row is treated as everything-but-SMS enabled by the caller.
func (p RecipientPreference) ChannelEnabled(ch Channel) bool {
	switch ch {
	case ChannelSystem:
		return p.SystemEnabled
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelSMS:
		return p.SMSEnabled
	case ChannelWecom:
		return p.WecomEnabled
	case ChannelWebhook:
		return p.WebhookEnabled
	}
	return false
}

// InboxNotification is the in-app inbox row written by the system channel.
type InboxNotification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int64      `json:"user_id"`
	Kind      string     `json:"kind"`
	Category  string     `json:"category"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Link      string     `json:"link,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
