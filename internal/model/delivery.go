package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the lifecycle state of a delivery record.
type DeliveryStatus string

const (
	StatusPending DeliveryStatus = "pending"
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
)

// SourceRef points at the business entity an alert originated from.
type SourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// DeliveryRequest describes one send attempt for one recipient.
//
// It is built per attempt and never mutated after construction.
type DeliveryRequest struct {
	RecipientID int64          `json:"recipient_id"`
	Kind        string         `json:"kind"`
	Category    string         `json:"category"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Priority    Priority       `json:"priority"`
	Channels    []Channel      `json:"channels"`
	Source      *SourceRef     `json:"source,omitempty"`
	Link        string         `json:"link,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	// Card carries a channel-specific rich payload (wecom template card,
	// webhook body override). Channels without card support ignore it.
	Card map[string]any `json:"card,omitempty"`
	// Force bypasses the quiet-hours gate entirely.
	Force bool `json:"force"`
}

// DeliveryRecord is the persisted unit of work: one attempt lineage for a
// single (alert, recipient, channel) triple. Records are never deleted,
// only transitioned to a terminal state.
type DeliveryRecord struct {
	ID          uuid.UUID      `json:"id"`
	AlertID     string         `json:"alert_id"`
	Category    string         `json:"category"`
	RecipientID int64          `json:"recipient_id"`
	Channel     Channel        `json:"channel"`
	Status      DeliveryStatus `json:"status"`
	Priority    Priority       `json:"priority"`

	// Denormalized snapshot used for idempotent re-delivery.
	Title   string `json:"title"`
	Content string `json:"content"`
	Target  string `json:"target"`
	Link    string `json:"link,omitempty"`

	RetryCount  int        `json:"retry_count"`
	LastError   string     `json:"last_error,omitempty"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
}

// Terminal reports whether the record reached a terminal state:
// sent, or failed with no retry scheduled.
func (r *DeliveryRecord) Terminal() bool {
	switch r.Status {
	case StatusSent:
		return true
	case StatusFailed:
		return r.NextRetryAt == nil
	}
	return false
}

// ChannelResult is the outcome of a single channel send. It is folded
// into the delivery record and never persisted on its own.
type ChannelResult struct {
	Channel Channel    `json:"channel"`
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
	// Permanent marks failures that retrying cannot fix: channel disabled
	// by configuration or the request is business-ineligible.
	Permanent bool `json:"-"`
}

// Sent builds a successful result for ch stamped with now.
func Sent(ch Channel, now time.Time) ChannelResult {
	return ChannelResult{Channel: ch, Success: true, SentAt: &now}
}

// Failed builds a transient failure result for ch.
func Failed(ch Channel, err error) ChannelResult {
	return ChannelResult{Channel: ch, Error: err.Error()}
}

// Rejected builds a permanent failure result for ch.
func Rejected(ch Channel, err error) ChannelResult {
	return ChannelResult{Channel: ch, Error: err.Error(), Permanent: true}
}
