package delivery

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type deliveryProcessor interface {
	ProcessQueued(ctx context.Context, id uuid.UUID) error
}

// Handler consumes delivery references off the queue and drives them
// through the dispatcher's send path.
type Handler struct {
	processor deliveryProcessor
}

func NewHandler(p deliveryProcessor) *Handler {
	return &Handler{processor: p}
}

// HandleMessage processes one queued delivery. A failing item is logged
// and dropped to its persisted state; it never crashes the worker loop.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage) {
	zlog.Logger.Info().Str("record_id", msg.DeliveryID.String()).Msg("processing queued delivery")

	if err := h.processor.ProcessQueued(ctx, msg.DeliveryID); err != nil {
		zlog.Logger.Error().Err(err).Str("record_id", msg.DeliveryID.String()).
			Msg("failed to process queued delivery")
		return
	}
}
