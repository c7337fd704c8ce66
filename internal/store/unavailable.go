package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UnavailableError signals that the primary store could not serve an
// operation at all, as opposed to serving it with a domain-level outcome
// such as "no rows". Transient marks failures worth retrying later
// (timeouts, refused connections); the rest are configuration-shaped.
type UnavailableError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("primary store unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// MarkUnavailable wraps err as an UnavailableError unless it represents a
// domain-level outcome the caller must see. pgx.ErrNoRows and server-side
// errors (constraint violations, bad SQL) mean the primary answered, so
// they pass through untouched.
func MarkUnavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return err
	}
	return &UnavailableError{Op: op, Transient: transient(err), Err: err}
}

func transient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr)
}

// ShouldFallback reports whether err indicates the primary backend could
// not serve the operation and the in-memory fallback should be consulted.
func ShouldFallback(err error) bool {
	if err == nil {
		return false
	}
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
