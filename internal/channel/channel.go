// Package channel contains one handler per delivery transport and the
// registry that resolves them.
//
// Handlers never panic or return errors past their boundary: every
// transport failure is folded into the ChannelResult they return.
package channel

import (
	"context"
	"errors"

	"github.com/plmkit/notifier/internal/model"
)

var (
	// ErrDisabled marks a channel that is switched off in configuration
	// or missing credentials. Static, so never worth retrying.
	ErrDisabled = errors.New("channel disabled")

	// ErrNotUrgent marks an SMS request below urgent priority. A hard
	// business rule, not a transient fault.
	ErrNotUrgent = errors.New("sms restricted to urgent notifications")

	// ErrRateLimited marks an SMS refused by the send caps. Transient:
	// the bucket rolls over.
	ErrRateLimited = errors.New("sms send cap reached")
)

// Handler is the uniform contract every transport implements.
type Handler interface {
	Name() model.Channel

	// Enabled reflects static configuration only, independent of any
	// particular request.
	Enabled() bool

	// Send performs one delivery attempt to target (address, phone,
	// corp user id or URL, depending on the channel). Failures come
	// back inside the result, never as a panic.
	Send(ctx context.Context, req model.DeliveryRequest, target string) model.ChannelResult
}
