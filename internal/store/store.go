package store

import (
	"errors"
	"time"
)

// Common errors returned by the order store
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderTerminal     = errors.New("order is in a terminal state")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidTracking   = errors.New("tracking must contain exactly 4 steps")
)

// Clock returns the current time.
type Clock func() time.Time
