package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so usecases can be tested with a
// fixed clock. The scheduler's notion of "due" comes exclusively from here.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
