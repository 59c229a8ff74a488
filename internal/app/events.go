package app

import (
	"context"
	"log/slog"

	"github.com/Riloax/weekplanner/internal/infra/pubsub"
)

// publishChange emits a change event best-effort. A nil publisher disables
// eventing; a publish failure never fails the originating operation.
func publishChange(ctx context.Context, p pubsub.Publisher, event pubsub.ChangeEvent) {
	if p == nil {
		return
	}

	if err := p.PublishChange(ctx, event); err != nil {
		slog.Error("failed to publish change event",
			"kind", event.Kind,
			"entity_id", event.EntityID,
			"error", err.Error(),
		)
	}
}
