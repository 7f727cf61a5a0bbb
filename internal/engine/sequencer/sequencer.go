// Package sequencer runs deferred tasks strictly one after another.
package sequencer

import "context"

// Task is a deferred unit of work.
type Task func(ctx context.Context) error

// Run executes tasks in order. Task N+1 starts only after task N returned nil.
// The first error stops the run and is returned unchanged; later tasks never start.
// An empty task list succeeds.
func Run(ctx context.Context, tasks ...Task) error {
	for _, task := range tasks {
		if err := task(ctx); err != nil {
			return err
		}
	}
	return nil
}
