package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/plmkit/notifier/internal/mocks/worker"
	"github.com/plmkit/notifier/internal/rabbitmq/queue"
)

func TestWorker_Run_HandlesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{DeliveryID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg)

	go w.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestWorker_Run_ShutdownDoesNotCancelInFlightSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{DeliveryID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	entered := make(chan struct{})
	release := make(chan struct{})
	var inFlightErr error

	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg).Do(
		func(handlerCtx context.Context, _ queue.DeliveryMessage) {
			close(entered)
			<-release
			inFlightErr = handlerCtx.Err()
		},
	)

	done := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 1)
		close(done)
	}()

	// Shut down while the handler is mid-send, then let it finish.
	<-entered
	cancel()
	close(release)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}

	if inFlightErr != nil {
		t.Fatalf("in-flight handler context cancelled: %v", inFlightErr)
	}
}

func TestWorker_Run_ConsumeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).
		Return(errors.New("queue unavailable"))

	go w.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestWorker_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, _ chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	)

	done := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 2)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorker_RequeueDue_PublishesDueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mockDue.EXPECT().ListDue(gomock.Any(), gomock.Any(), requeueBatch).Return(ids, nil)
	mockPublisher.EXPECT().Publish(queue.DeliveryMessage{DeliveryID: ids[0]}, strategy).Return(nil)
	mockPublisher.EXPECT().Publish(queue.DeliveryMessage{DeliveryID: ids[1]}, strategy).Return(nil)

	w.requeueOnce(context.Background(), strategy)
}

func TestWorker_RequeueDue_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockPublisher := mocks.NewMockdeliveryPublisher(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockDue := mocks.NewMockdueLister(ctrl)

	w := New(mockConsumer, mockPublisher, mockHandler, mockDue)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// Publish must not be called when the scan itself fails.
	mockDue.EXPECT().ListDue(gomock.Any(), gomock.Any(), requeueBatch).
		Return(nil, errors.New("db error"))

	w.requeueOnce(context.Background(), strategy)
}
