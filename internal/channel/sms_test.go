package channel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plmkit/notifier/internal/model"
)

type fakeTexter struct {
	calls int
	err   error
}

func (f *fakeTexter) Send(phone, content string) error {
	f.calls++
	return f.err
}

func TestSMSHandler_RefusesNonUrgent(t *testing.T) {
	texter := &fakeTexter{}
	h := NewSMSHandler(texter, true, 0, 0)

	res := h.Send(context.Background(), model.DeliveryRequest{Priority: model.PriorityNormal}, "+15550001")

	assert.False(t, res.Success)
	assert.True(t, res.Permanent)
	assert.Contains(t, res.Error, "urgent")
	assert.Zero(t, texter.calls, "transport must not be contacted")
}

func TestSMSHandler_SendsUrgent(t *testing.T) {
	texter := &fakeTexter{}
	h := NewSMSHandler(texter, true, 0, 0)

	req := model.DeliveryRequest{
		Priority: model.PriorityUrgent,
		Category: "shortage",
		Title:    "Line down",
		Content:  "Component X out of stock",
	}
	res := h.Send(context.Background(), req, "+15550001")

	assert.True(t, res.Success)
	require.NotNil(t, res.SentAt)
	assert.Equal(t, 1, texter.calls)
}

func TestSMSHandler_Disabled(t *testing.T) {
	texter := &fakeTexter{}
	h := NewSMSHandler(texter, false, 0, 0)

	res := h.Send(context.Background(), model.DeliveryRequest{Priority: model.PriorityUrgent}, "+15550001")

	assert.False(t, res.Success)
	assert.True(t, res.Permanent)
	assert.Zero(t, texter.calls)
}

func TestSMSHandler_TransportFailureIsTransient(t *testing.T) {
	texter := &fakeTexter{err: errors.New("gateway timeout")}
	h := NewSMSHandler(texter, true, 0, 0)

	res := h.Send(context.Background(), model.DeliveryRequest{Priority: model.PriorityUrgent}, "+15550001")

	assert.False(t, res.Success)
	assert.False(t, res.Permanent)
	assert.Contains(t, res.Error, "gateway timeout")
}

func TestSendCaps(t *testing.T) {
	caps := newSendCaps(3, 2)
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	caps.nowFunc = func() time.Time { return now }

	assert.True(t, caps.allow())
	assert.True(t, caps.allow())
	assert.False(t, caps.allow(), "hourly cap reached")

	// Next hour frees the hourly bucket but daily cap still counts.
	now = now.Add(time.Hour)
	assert.True(t, caps.allow())
	assert.False(t, caps.allow(), "daily cap reached")

	// Next day resets everything.
	now = now.Add(24 * time.Hour)
	assert.True(t, caps.allow())
}

func TestSMSHandler_RateLimited(t *testing.T) {
	texter := &fakeTexter{}
	h := NewSMSHandler(texter, true, 1, 1)

	req := model.DeliveryRequest{Priority: model.PriorityUrgent}

	first := h.Send(context.Background(), req, "+15550001")
	assert.True(t, first.Success)

	second := h.Send(context.Background(), req, "+15550001")
	assert.False(t, second.Success)
	assert.False(t, second.Permanent, "cap rolls over, so worth retrying")
	assert.Equal(t, 1, texter.calls)
}
