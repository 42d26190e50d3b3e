package workers

import (
	"context"
	"sync"
)

// Workers starts and stops a group of workers together.
type Workers struct {
	mu      sync.Mutex
	running bool
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order. A second Run without a Stop in between
// does nothing.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true

	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false

	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

func (w *Workers) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
