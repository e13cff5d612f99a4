package core

import (
	"context"

	"github.com/google/uuid"
)

// NewID returns a random identifier used for sessions and invocations.
func NewID() string { return uuid.NewString() }

type invocationIDKey struct{}

// WithInvocationID returns a child context carrying the invocation id.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationIDFromContext returns the invocation id stored in ctx, if any.
func InvocationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(invocationIDKey{}).(string)
	return id, ok && id != ""
}
