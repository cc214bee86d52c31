// Package workers runs the long-lived goroutines of a process as one group.
// The first worker to fail cancels the others.
package workers

import "context"

// Worker is one long-lived unit of work.
//
// Run blocks until the work is done or ctx is cancelled. A non-nil error
// stops the whole group.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to the Worker interface.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
