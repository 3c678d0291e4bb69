package main

import (
	"context"

	"github.com/google/uuid"
)

// newRunContext tags ctx with a fresh run ID so every log line of one
// run can be correlated.
func newRunContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey, uuid.NewString())
}
