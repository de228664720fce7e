package channel

import (
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/model"
)

// Registry maps channel names to their handlers. It is built once at
// startup and read-only afterwards.
type Registry struct {
	handlers map[model.Channel]Handler
	system   Handler
}

// NewRegistry builds a registry from the given handlers. One of them must
// be the system handler: it doubles as the fallback for unknown channels.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[model.Channel]Handler, len(handlers))}

	for _, h := range handlers {
		r.handlers[h.Name()] = h
		if h.Name() == model.ChannelSystem {
			r.system = h
		}
	}

	return r
}

// Resolve returns the handler for ch. An unknown channel resolves to the
// system handler so a misnamed channel still surfaces in-app instead of
// vanishing.
func (r *Registry) Resolve(ch model.Channel) Handler {
	if h, ok := r.handlers[ch]; ok {
		return h
	}

	zlog.Logger.Warn().Str("channel", ch.String()).Msg("unknown channel, falling back to system")
	return r.system
}

// Channels lists the channels the registry knows about.
func (r *Registry) Channels() []model.Channel {
	out := make([]model.Channel, 0, len(r.handlers))
	for ch := range r.handlers {
		out = append(out, ch)
	}
	return out
}
