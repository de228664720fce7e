package dto

// SendRequest notifies an explicit recipient list.
type SendRequest struct {
	AlertID    string   `json:"alert_id" validate:"required"`
	Recipients []int64  `json:"recipients" validate:"required,min=1"`
	Channels   []string `json:"channels" validate:"required,min=1"`

	Category string         `json:"category" validate:"required"`
	Title    string         `json:"title" validate:"required"`
	Content  string         `json:"content" validate:"required"`
	Severity string         `json:"severity"`
	Link     string         `json:"link"`
	Metadata map[string]any `json:"metadata"`
	Card     map[string]any `json:"card"`

	Force  bool `json:"force"`
	Inline bool `json:"inline"`
}

// BroadcastRule selects a rule-based audience.
type BroadcastRule struct {
	OwnerID   int64    `json:"owner_id"`
	HandlerID int64    `json:"handler_id"`
	ExtraIDs  []int64  `json:"extra_ids"`
	Channels  []string `json:"channels"`
}

// BroadcastRequest notifies a rule-based audience.
type BroadcastRequest struct {
	AlertID string        `json:"alert_id" validate:"required"`
	Rule    BroadcastRule `json:"rule" validate:"required"`

	Category string         `json:"category" validate:"required"`
	Title    string         `json:"title" validate:"required"`
	Content  string         `json:"content" validate:"required"`
	Severity string         `json:"severity"`
	Link     string         `json:"link"`
	Metadata map[string]any `json:"metadata"`
	Card     map[string]any `json:"card"`

	Force bool `json:"force"`
}
