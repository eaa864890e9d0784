// Package workers runs the long-lived background loops of the server next to
// the request handlers.
//
// A worker blocks in Run until its context is cancelled. Workers aggregates
// several of them and stops all of them as soon as one fails.
package workers

import "context"

// Worker is a background loop.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
