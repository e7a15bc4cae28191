// Package workers runs the named background loops of the client, such as
// the push subscriptions of the signed-in session.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx ends or the loop gives
// up, and returns the reason.
//
// Example implementation:
//
//	type Poller struct{}
//
//	func (p *Poller) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return ctx.Err()
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
