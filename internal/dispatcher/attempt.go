package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/model"
	"github.com/plmkit/notifier/internal/quiet"
)

// ProcessQueued is the worker's entry point: re-load the record, re-check
// its gate conditions and run one send attempt.
func (d *Dispatcher) ProcessQueued(ctx context.Context, id uuid.UUID) error {
	rec, err := d.repo.GetRecordByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load delivery record: %w", err)
	}

	if rec.Terminal() {
		zlog.Logger.Debug().Str("record_id", id.String()).Msg("record already terminal, skipping")
		return nil
	}

	audience, err := d.resolver.Resolve(ctx, []int64{rec.RecipientID})
	if err != nil {
		return fmt.Errorf("resolve recipient %d: %w", rec.RecipientID, err)
	}

	member, ok := audience[rec.RecipientID]
	if !ok {
		// Recipient vanished or was deactivated after the record was
		// created: close the lineage out instead of retrying forever.
		if err := d.repo.MarkFailed(ctx, id, rec.RetryCount, "recipient no longer active"); err != nil {
			return fmt.Errorf("mark failed: %w", err)
		}
		d.cacheStatus(ctx, id, model.StatusFailed)
		return nil
	}

	_, err = d.Attempt(ctx, rec, member.Pref, false)
	return err
}

// Attempt performs one channel send for a non-terminal record and
// persists the resulting transition. With bypassQuiet the quiet-hours
// gate is short-circuited (forced and inline sends).
//
// The returned error reports persistence trouble only; transport failures
// live inside the ChannelResult.
func (d *Dispatcher) Attempt(ctx context.Context, rec model.DeliveryRecord, pref model.RecipientPreference, bypassQuiet bool) (model.ChannelResult, error) {
	if rec.Terminal() {
		return model.ChannelResult{Channel: rec.Channel, Success: rec.Status == model.StatusSent}, nil
	}

	now := time.Now()

	if !bypassQuiet && quiet.InWindow(pref, now) {
		resume := quiet.NextResume(pref, now)
		if err := d.repo.MarkDeferred(ctx, rec.ID, "deferred: recipient quiet hours", resume); err != nil {
			return model.ChannelResult{}, fmt.Errorf("defer delivery: %w", err)
		}
		zlog.Logger.Info().Str("record_id", rec.ID.String()).Time("resume_at", resume).
			Msg("delivery deferred by quiet hours")
		return model.ChannelResult{Channel: rec.Channel, Error: "deferred: recipient quiet hours"}, nil
	}

	req := model.DeliveryRequest{
		RecipientID: rec.RecipientID,
		Kind:        rec.Category,
		Category:    rec.Category,
		Title:       rec.Title,
		Content:     rec.Content,
		Priority:    rec.Priority,
		Channels:    []model.Channel{rec.Channel},
		Link:        rec.Link,
	}

	handler := d.registry.Resolve(rec.Channel)
	result := handler.Send(ctx, req, rec.Target)

	if result.Success {
		sentAt := now
		if result.SentAt != nil {
			sentAt = *result.SentAt
		}
		if err := d.repo.MarkSent(ctx, rec.ID, sentAt); err != nil {
			// Never drop the in-memory outcome silently: log it and leave
			// the record in its last durable state for the requeue pass.
			zlog.Logger.Error().Err(err).Str("record_id", rec.ID.String()).
				Msg("delivery sent but status not persisted")
			return result, fmt.Errorf("persist sent state: %w", err)
		}
		d.cacheStatus(ctx, rec.ID, model.StatusSent)
		return result, nil
	}

	return result, d.recordFailure(ctx, rec, result)
}

// recordFailure decides retry-versus-terminal for a failed attempt.
// Permanent rejections (disabled channel, business-ineligible request)
// never burn retry budget; transient failures follow the escalating
// schedule until the ceiling.
func (d *Dispatcher) recordFailure(ctx context.Context, rec model.DeliveryRecord, result model.ChannelResult) error {
	retryCount := rec.RetryCount + 1

	if result.Permanent || retryCount > d.maxRetries {
		if err := d.repo.MarkFailed(ctx, rec.ID, retryCount, result.Error); err != nil {
			return fmt.Errorf("mark failed: %w", err)
		}
		d.cacheStatus(ctx, rec.ID, model.StatusFailed)
		zlog.Logger.Warn().Str("record_id", rec.ID.String()).Str("channel", rec.Channel.String()).
			Str("error", result.Error).Bool("permanent", result.Permanent).
			Msg("delivery terminally failed")
		return nil
	}

	nextAt := d.nextRetryAt(time.Now(), retryCount)
	if err := d.repo.MarkRetry(ctx, rec.ID, retryCount, result.Error, nextAt); err != nil {
		return fmt.Errorf("mark retry: %w", err)
	}

	zlog.Logger.Info().Str("record_id", rec.ID.String()).Int("retry_count", retryCount).
		Time("next_retry_at", nextAt).Str("error", result.Error).
		Msg("delivery failed, retry scheduled")
	return nil
}

// defaultRetryDelay applies when the dispatcher was built with an
// empty retry schedule.
const defaultRetryDelay = 5 * time.Minute

// nextRetryAt computes the next eligible instant for the given attempt
// number, clamping to the last schedule entry.
func (d *Dispatcher) nextRetryAt(now time.Time, retryCount int) time.Time {
	if len(d.schedule) == 0 {
		return now.Add(defaultRetryDelay)
	}
	idx := retryCount - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(d.schedule) {
		idx = len(d.schedule) - 1
	}
	return now.Add(d.schedule[idx])
}

// RecordStatus returns a record's delivery status, read through the
// redis cache the way every status lookup in the engine is.
func (d *Dispatcher) RecordStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error) {
	status, err := d.cache.GetWithRetry(ctx, d.infra, statusKey(id))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("record_id", id.String()).Msg("failed to read status cache")
	}
	if err == nil && status != "" {
		return model.DeliveryStatus(status), nil
	}

	rec, err := d.repo.GetRecordByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get delivery record: %w", err)
	}

	d.cacheStatus(ctx, id, rec.Status)
	return rec.Status, nil
}

func (d *Dispatcher) cacheStatus(ctx context.Context, id uuid.UUID, status model.DeliveryStatus) {
	if err := d.cache.SetWithRetry(ctx, d.infra, statusKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("record_id", id.String()).Msg("failed to cache delivery status")
	}
}

func statusKey(id uuid.UUID) string {
	return "delivery:status:" + id.String()
}
