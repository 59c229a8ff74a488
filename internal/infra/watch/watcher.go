package watch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/infra/pubsub"
	"github.com/Riloax/weekplanner/internal/observability/tracing"
)

// Watcher turns change events into full-state snapshots. Every event for a
// watched user triggers a fresh query of the whole reminder and task set, so
// consumers never see partial or delta state.
type Watcher struct {
	subscriber message.Subscriber
	snapshots  app.SnapshotUseCase
}

func NewWatcher(subscriber message.Subscriber, snapshots app.SnapshotUseCase) *Watcher {
	return &Watcher{
		subscriber: subscriber,
		snapshots:  snapshots,
	}
}

// Watch emits an initial snapshot immediately, then a new snapshot whenever a
// reminder or task change event for userID arrives. The returned channel is
// closed when ctx is cancelled. Events for other users are acknowledged and
// skipped.
func (w *Watcher) Watch(ctx context.Context, userID string) (<-chan app.SnapshotOutput, error) {
	reminderMessages, err := w.subscriber.Subscribe(ctx, pubsub.TopicReminderChanged)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to reminder changes: %w", err)
	}

	taskMessages, err := w.subscriber.Subscribe(ctx, pubsub.TopicTaskChanged)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to task changes: %w", err)
	}

	out := make(chan app.SnapshotOutput, 1)

	initial, err := w.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	out <- initial

	go w.run(ctx, userID, reminderMessages, taskMessages, out)

	return out, nil
}

func (w *Watcher) run(
	ctx context.Context,
	userID string,
	reminderMessages <-chan *message.Message,
	taskMessages <-chan *message.Message,
	out chan<- app.SnapshotOutput,
) {
	defer close(out)

	for {
		var msg *message.Message

		select {
		case <-ctx.Done():
			return
		case m, ok := <-reminderMessages:
			if !ok {
				return
			}
			msg = m
		case m, ok := <-taskMessages:
			if !ok {
				return
			}
			msg = m
		}

		if msg.Metadata.Get("user_id") != userID {
			msg.Ack()

			continue
		}

		// Restore the publisher's trace context so the refresh query is
		// attributed to the mutation that caused it.
		msgCtx := tracing.ExtractFromMap(ctx, msg.Metadata)

		snapshot, err := w.snapshots.Snapshot(msgCtx, userID)
		if err != nil {
			slog.ErrorContext(msgCtx, "failed to refresh snapshot after change event",
				"error", err,
				"user_id", userID,
				"message_id", msg.UUID,
			)
			msg.Ack()

			continue
		}

		msg.Ack()

		select {
		case <-ctx.Done():
			return
		case out <- snapshot:
		}
	}
}
