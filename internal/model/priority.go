package model

import "strings"

// Priority is the delivery priority of a notification.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// MapSeverity maps a business severity level to a delivery priority.
//
// The mapping is case-insensitive and total: unrecognized or empty
// values fall back to PriorityNormal.
func MapSeverity(severity string) Priority {
	switch strings.ToUpper(strings.TrimSpace(severity)) {
	case "URGENT", "CRITICAL":
		return PriorityUrgent
	case "WARNING":
		return PriorityHigh
	case "INFO":
		return PriorityNormal
	case "LOW":
		return PriorityLow
	default:
		return PriorityNormal
	}
}
