package mcp

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/tasklist/pkg/observability"
)

var errTaskIDRequired = errors.New("task_id must be a positive integer")

func requireTaskID(id int) error {
	if id <= 0 {
		return errTaskIDRequired
	}
	return nil
}

// withRequest tags a tool invocation so its log lines can be correlated.
func withRequest(ctx context.Context) context.Context {
	if observability.RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return observability.WithRequestID(ctx, "")
}
