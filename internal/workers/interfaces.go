// Package workers runs the background jobs of the client while a user is
// signed in. The TUI starts them on the private pages and stops them when
// the session ends.
package workers

import "context"

// Worker is a background job with an explicit lifetime.
//
// Run must not block: implementations spawn their own goroutines and keep
// them alive until ctx is cancelled or Stop is called. Stop blocks until
// the job has finished and is safe to call on a stopped worker.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
