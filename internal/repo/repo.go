package repo

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidUserID         = errors.New("invalid user ID: cannot be empty")
	ErrInvalidNotificationID = errors.New("invalid notification ID: cannot be empty")
)

const (
	// Timeouts
	defaultWriteTimeout = 5 * time.Second
	defaultReadTimeout  = 30 * time.Second
)

// ensureTimeout attaches a default deadline when the caller did not set one
func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hadDeadline := ctx.Deadline(); hadDeadline {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
