package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapSeverity(t *testing.T) {
	cases := []struct {
		severity string
		want     Priority
	}{
		{"URGENT", PriorityUrgent},
		{"CRITICAL", PriorityUrgent},
		{"critical", PriorityUrgent},
		{"WARNING", PriorityHigh},
		{"warning", PriorityHigh},
		{"INFO", PriorityNormal},
		{"low", PriorityLow},
		{"", PriorityNormal},
		{"garbage", PriorityNormal},
		{"  Warning  ", PriorityHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapSeverity(tc.severity), "severity %q", tc.severity)
	}
}

func TestChannelValid(t *testing.T) {
	for _, ch := range AllChannels() {
		assert.True(t, ch.Valid())
	}
	assert.False(t, Channel("pigeon").Valid())
}

func TestDeliveryRecordTerminal(t *testing.T) {
	now := time.Now()

	sent := DeliveryRecord{Status: StatusSent}
	assert.True(t, sent.Terminal())

	pending := DeliveryRecord{Status: StatusPending}
	assert.False(t, pending.Terminal())

	retryable := DeliveryRecord{Status: StatusFailed, NextRetryAt: &now}
	assert.False(t, retryable.Terminal())

	dead := DeliveryRecord{Status: StatusFailed}
	assert.True(t, dead.Terminal())
}
