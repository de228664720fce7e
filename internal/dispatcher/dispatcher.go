// Package dispatcher turns business alerts into per-(recipient, channel)
// delivery records and owns every state transition those records make.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/channel"
	"github.com/plmkit/notifier/internal/model"
	"github.com/plmkit/notifier/internal/quiet"
	"github.com/plmkit/notifier/internal/rabbitmq/queue"
	"github.com/plmkit/notifier/internal/recipient"
	"github.com/plmkit/notifier/internal/repository/delivery"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher/mock.go -package=mocks

type deliveryRepository interface {
	CreateRecord(ctx context.Context, rec model.DeliveryRecord) (uuid.UUID, error)
	GetRecordByID(ctx context.Context, id uuid.UUID) (model.DeliveryRecord, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, retryCount int, lastError string, nextRetryAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error
	MarkDeferred(ctx context.Context, id uuid.UUID, reason string, resumeAt time.Time) error
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type audienceResolver interface {
	Resolve(ctx context.Context, ids []int64) (recipient.Audience, error)
	ResolveRule(ctx context.Context, rule recipient.Rule) (recipient.Audience, error)
}

type handlerRegistry interface {
	Resolve(ch model.Channel) channel.Handler
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Request is the inbound form business-rule callers hand to the engine.
// Either Recipients or Rule selects the audience; Channels overrides the
// rule's channel list.
type Request struct {
	AlertID    string
	Recipients []int64
	Rule       *recipient.Rule
	Channels   []model.Channel

	Kind     string
	Category string
	Title    string
	Content  string
	Severity string // business severity, mapped to a delivery priority
	Source   *model.SourceRef
	Link     string
	Metadata map[string]any
	Card     map[string]any

	// Force bypasses quiet hours and is always sent inline so the gate
	// is never re-evaluated behind the caller's back.
	Force bool
	// Inline skips the queue even without force (used for test sends).
	Inline bool
}

// Outcome reports what happened to one (recipient, channel) pair.
type Outcome struct {
	RecordID    uuid.UUID     `json:"record_id,omitempty"`
	RecipientID int64         `json:"recipient_id"`
	Channel     model.Channel `json:"channel"`
	State       string        `json:"state"` // queued | sent | deferred | failed | skipped | duplicate
	Error       string        `json:"error,omitempty"`
}

// Result is the acknowledgement returned to the business-event caller.
type Result struct {
	AlertID  string    `json:"alert_id"`
	Created  int       `json:"created"`
	Outcomes []Outcome `json:"outcomes"`
}

// Dispatcher orchestrates resolution, dedup, quiet hours, queueing and
// the channel send path. It is the only component that writes delivery
// record state.
type Dispatcher struct {
	repo     deliveryRepository
	queue    deliveryPublisher
	resolver audienceResolver
	registry handlerRegistry
	cache    statusCache

	schedule   []time.Duration
	maxRetries int
	infra      retry.Strategy // strategy for queue/cache calls
}

func New(
	repo deliveryRepository,
	q deliveryPublisher,
	resolver audienceResolver,
	registry handlerRegistry,
	cache statusCache,
	schedule []time.Duration,
	maxRetries int,
	infra retry.Strategy,
) *Dispatcher {
	return &Dispatcher{
		repo:       repo,
		queue:      q,
		resolver:   resolver,
		registry:   registry,
		cache:      cache,
		schedule:   schedule,
		maxRetries: maxRetries,
		infra:      infra,
	}
}

// Dispatch resolves the audience and creates one delivery record per
// (recipient, channel) pair, dropping duplicates against records already
// in flight. Pairs are queued for the worker unless the request is forced
// or inline, or the queue is unavailable; then they are sent on the spot.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	res := Result{AlertID: req.AlertID}

	audience, channels, err := d.resolveAudience(ctx, req)
	if err != nil {
		return res, err
	}

	priority := model.MapSeverity(req.Severity)

	for _, member := range audience {
		for _, ch := range channels {
			outcome := d.dispatchPair(ctx, req, member, ch, priority)
			if outcome.RecordID != uuid.Nil && outcome.State != "duplicate" {
				res.Created++
			}
			res.Outcomes = append(res.Outcomes, outcome)
		}
	}

	return res, nil
}

func (d *Dispatcher) resolveAudience(ctx context.Context, req Request) (recipient.Audience, []model.Channel, error) {
	if len(req.Recipients) > 0 {
		audience, err := d.resolver.Resolve(ctx, req.Recipients)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve recipients: %w", err)
		}

		channels := req.Channels
		if len(channels) == 0 {
			channels = []model.Channel{model.ChannelSystem}
		}
		return audience, channels, nil
	}

	if req.Rule == nil {
		return nil, nil, errors.New("request has neither recipients nor a rule")
	}

	audience, err := d.resolver.ResolveRule(ctx, *req.Rule)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve rule: %w", err)
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = req.Rule.ResolvedChannels()
	}
	return audience, channels, nil
}

// dispatchPair runs the per-pair algorithm: preference check, target
// resolution, dedup-guarded record creation, quiet-hours deferral, then
// queue or inline send.
func (d *Dispatcher) dispatchPair(ctx context.Context, req Request, member recipient.Member, ch model.Channel, priority model.Priority) Outcome {
	userID := member.User.ID
	out := Outcome{RecipientID: userID, Channel: ch}

	if !member.Pref.ChannelEnabled(ch) {
		out.State = "skipped"
		return out
	}

	target, ok := recipient.Target(member, ch)
	if !ok {
		// No resolvable target is an empty audience member, not an error.
		out.State = "skipped"
		return out
	}

	rec := model.DeliveryRecord{
		AlertID:     req.AlertID,
		Category:    req.Category,
		RecipientID: userID,
		Channel:     ch,
		Status:      model.StatusPending,
		Priority:    priority,
		Title:       req.Title,
		Content:     req.Content,
		Target:      target,
		Link:        req.Link,
	}

	id, err := d.repo.CreateRecord(ctx, rec)
	if err != nil {
		if errors.Is(err, delivery.ErrDuplicateDelivery) {
			out.State = "duplicate"
			return out
		}
		out.State = "failed"
		out.Error = err.Error()
		zlog.Logger.Error().Err(err).Str("alert_id", req.AlertID).Int64("user_id", userID).
			Str("channel", ch.String()).Msg("failed to create delivery record")
		return out
	}
	out.RecordID = id
	rec.ID = id

	if !req.Force && quiet.InWindow(member.Pref, time.Now()) {
		resume := quiet.NextResume(member.Pref, time.Now())
		if err := d.repo.MarkDeferred(ctx, id, "deferred: recipient quiet hours", resume); err != nil {
			zlog.Logger.Error().Err(err).Str("record_id", id.String()).Msg("failed to defer delivery")
		}
		out.State = "deferred"
		return out
	}

	if req.Force || req.Inline {
		return d.sendInline(ctx, rec, member, out)
	}

	if err := d.queue.Publish(queue.DeliveryMessage{DeliveryID: id}, d.infra); err != nil {
		// Queueing is an optimization, not a correctness requirement:
		// fall back to sending inline rather than losing the delivery.
		zlog.Logger.Warn().Err(err).Str("record_id", id.String()).Msg("queue unavailable, sending inline")
		return d.sendInline(ctx, rec, member, out)
	}

	out.State = "queued"
	return out
}

func (d *Dispatcher) sendInline(ctx context.Context, rec model.DeliveryRecord, member recipient.Member, out Outcome) Outcome {
	result, err := d.Attempt(ctx, rec, member.Pref, true)
	if err != nil {
		out.State = "failed"
		out.Error = err.Error()
		return out
	}

	if result.Success {
		out.State = "sent"
	} else {
		out.State = "failed"
		out.Error = result.Error
	}
	return out
}
