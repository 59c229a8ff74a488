package logging

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// ValidateAndExtractRequestID returns the incoming request id when it is a
// valid UUID, otherwise a fresh one. Callers must not trust arbitrary header
// values in logs.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" {
		if _, err := uuid.Parse(raw); err == nil {
			return raw
		}
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}
