package driven

import "context"

// Pacer spaces out the stages of the result reveal.
type Pacer interface {
	// Wait blocks until the next stage may be shown.
	Wait(ctx context.Context) error
}
