// Package workers runs the background jobs of the diary server, such as the
// entry cache janitor.
package workers

import "context"

// Worker is a background job.
//
// Run must not block: long-running workers start their own goroutines and
// stop when ctx is done.
//
//	type janitor struct{}
//
//	func (j *janitor) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
}
