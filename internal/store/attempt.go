package store

import (
	"context"
	"log/slog"
	"time"
)

// Degrader holds the shared settings for primary-then-fallback execution
// within one resource's resilient repository.
type Degrader struct {
	Resource string
	Timeout  time.Duration
	Log      *slog.Logger
}

// NewDegrader creates a Degrader for the named resource. A nil logger
// defaults to slog.Default().
func NewDegrader(resource string, timeout time.Duration, log *slog.Logger) *Degrader {
	if log == nil {
		log = slog.Default()
	}
	return &Degrader{Resource: resource, Timeout: timeout, Log: log}
}

// Attempt runs primary with the degrader's timeout. If the primary cannot
// serve the operation (see ShouldFallback), the degradation is logged and
// fallback runs with the caller's context, its outcome returned as
// authoritative. Domain-level outcomes from the primary, success or error,
// are returned as-is. Writes served by the fallback live only in process
// memory and are never replayed to the primary.
func Attempt[T any](ctx context.Context, d *Degrader, op string, primary, fallback func(context.Context) (T, error)) (T, error) {
	pctx, cancel := context.WithTimeout(ctx, d.Timeout)
	out, err := primary(pctx)
	cancel()
	if err == nil || !ShouldFallback(err) {
		return out, err
	}

	d.Log.Warn("primary store unavailable, serving from memory",
		"resource", d.Resource, "op", op, "error", err)

	return fallback(ctx)
}

// AttemptErr is Attempt for operations without a result value.
func AttemptErr(ctx context.Context, d *Degrader, op string, primary, fallback func(context.Context) error) error {
	wrap := func(fn func(context.Context) error) func(context.Context) (struct{}, error) {
		return func(ctx context.Context) (struct{}, error) {
			return struct{}{}, fn(ctx)
		}
	}
	_, err := Attempt(ctx, d, op, wrap(primary), wrap(fallback))
	return err
}
