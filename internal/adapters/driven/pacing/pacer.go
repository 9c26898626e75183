package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
)

// Ensure Pacer implements the interface.
var _ driven.Pacer = (*Pacer)(nil)

// Pacer lets one stage through per interval. The first Wait returns
// immediately; each later call waits until the interval has elapsed since
// the previous one.
type Pacer struct {
	limiter *rate.Limiter
	delay   time.Duration
}

// New creates a pacer with the given interval. A non-positive delay
// disables pacing.
func New(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{
		limiter: rate.NewLimiter(limit, 1),
		delay:   delay,
	}
}

// Wait blocks until the next stage may be revealed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Delay returns the configured interval.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Enabled reports whether the pacer actually delays anything.
func (p *Pacer) Enabled() bool {
	return p.delay > 0
}
