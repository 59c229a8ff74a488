package pubsub

import (
	"context"
	"fmt"
	"io"
	"time"
)

const (
	TopicReminderChanged = "planner.reminder.changed"
	TopicTaskChanged     = "planner.task.changed"
)

const (
	KindReminder = "reminder"
	KindTask     = "task"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionScheduled = "scheduled"
)

// ChangeEvent notifies subscribers that a user's reminder or task set
// changed. It carries no payload beyond identity: consumers refetch a full
// snapshot rather than applying deltas.
type ChangeEvent struct {
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	UserID     string    `json:"user_id"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e ChangeEvent) Topic() (string, error) {
	switch e.Kind {
	case KindReminder:
		return TopicReminderChanged, nil
	case KindTask:
		return TopicTaskChanged, nil
	default:
		return "", fmt.Errorf("unknown event kind: %q", e.Kind)
	}
}

type Publisher interface {
	PublishChange(ctx context.Context, event ChangeEvent) error
	io.Closer
}
