// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way. The only worker today is the
// purge sweep that removes expired device-approval requests.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens on an
// internal goroutine. Stop blocks until the worker has wound down.
type Worker interface {
	Run()
	Stop()
}
