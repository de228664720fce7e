package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage)
}

type dueLister interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

const (
	requeueInterval = 30 * time.Second
	requeueBatch    = 100
)

// Worker drains the delivery queue with a pool of goroutines and
// republishes records whose retry or quiet-hours deferral has come due.
//
// Multiple worker processes may run in parallel: dedup is enforced by the
// unique non-terminal record per key, not by worker exclusivity.
type Worker struct {
	queue   deliveryConsumer
	pub     deliveryPublisher
	handler messageHandler
	due     dueLister
}

func New(q deliveryConsumer, pub deliveryPublisher, h messageHandler, due dueLister) *Worker {
	return &Worker{
		queue:   q,
		pub:     pub,
		handler: h,
		due:     due,
	}
}

// Run blocks until ctx is cancelled. Shutdown stops dequeuing but lets
// in-flight sends finish and persist their result.
func (w *Worker) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DeliveryMessage, workerCount*10)

	// In-flight work runs under a detached context: cancellation stops
	// dequeuing only, it must not abort a send's persistence calls.
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		if err := w.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.requeueDue(ctx, strategy)
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					w.handler.HandleMessage(sendCtx, msg)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("delivery worker stopped")
}

// requeueDue periodically scans for records whose next_retry_at has
// passed (scheduled retries and quiet-hours deferrals) and puts their ids
// back on the queue. This also recovers work that was enqueued before a
// queue outage.
func (w *Worker) requeueDue(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(requeueInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.requeueOnce(ctx, strategy)
		}
	}
}

func (w *Worker) requeueOnce(ctx context.Context, strategy retry.Strategy) {
	ids, err := w.due.ListDue(ctx, time.Now(), requeueBatch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list due deliveries")
		return
	}

	for _, id := range ids {
		if err := w.pub.Publish(queue.DeliveryMessage{DeliveryID: id}, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("record_id", id.String()).
				Msg("failed to requeue due delivery")
		}
	}

	if len(ids) > 0 {
		zlog.Logger.Info().Int("count", len(ids)).Msg("requeued due deliveries")
	}
}
