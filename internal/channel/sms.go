package channel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/plmkit/notifier/internal/model"
)

// Texter is the SMS gateway contract, implemented by pkg/sms.
type Texter interface {
	Send(phone, content string) error
}

// sendCaps tracks per-day and per-hour SMS counts in-process.
//
// Counters are best-effort only, not cross-process exact; acceptable
// because SMS is gated to urgent priority and volume stays low.
type sendCaps struct {
	mu      sync.Mutex
	counts  map[string]int
	daily   int
	hourly  int
	nowFunc func() time.Time
}

func newSendCaps(daily, hourly int) *sendCaps {
	return &sendCaps{
		counts:  make(map[string]int),
		daily:   daily,
		hourly:  hourly,
		nowFunc: time.Now,
	}
}

// allow consumes one send from today's and this hour's buckets, refusing
// when either cap is hit. A cap of zero or less means unlimited.
func (c *sendCaps) allow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFunc()
	dayKey := now.Format("2006-01-02")
	hourKey := now.Format("2006-01-02-15")

	if c.daily > 0 && c.counts[dayKey] >= c.daily {
		return false
	}
	if c.hourly > 0 && c.counts[hourKey] >= c.hourly {
		return false
	}

	c.counts[dayKey]++
	c.counts[hourKey]++

	// Old buckets are garbage; drop them once the map grows.
	if len(c.counts) > 64 {
		for k := range c.counts {
			if k != dayKey && k != hourKey {
				delete(c.counts, k)
			}
		}
	}

	return true
}

// SMSHandler delivers notifications through the SMS gateway. It refuses
// anything below urgent priority and enforces the configured send caps.
type SMSHandler struct {
	texter  Texter
	caps    *sendCaps
	enabled bool
}

func NewSMSHandler(texter Texter, enabled bool, dailyCap, hourlyCap int) *SMSHandler {
	return &SMSHandler{
		texter:  texter,
		caps:    newSendCaps(dailyCap, hourlyCap),
		enabled: enabled,
	}
}

func (h *SMSHandler) Name() model.Channel { return model.ChannelSMS }

func (h *SMSHandler) Enabled() bool { return h.enabled }

func (h *SMSHandler) Send(_ context.Context, req model.DeliveryRequest, target string) model.ChannelResult {
	if !h.enabled {
		return model.Rejected(model.ChannelSMS, ErrDisabled)
	}

	if req.Priority != model.PriorityUrgent {
		return model.Rejected(model.ChannelSMS, ErrNotUrgent)
	}

	if !h.caps.allow() {
		return model.Failed(model.ChannelSMS, ErrRateLimited)
	}

	content := fmt.Sprintf("[%s] %s: %s", req.Category, req.Title, req.Content)

	if err := h.texter.Send(target, content); err != nil {
		return model.Failed(model.ChannelSMS, fmt.Errorf("sms send: %w", err))
	}

	return model.Sent(model.ChannelSMS, time.Now())
}
