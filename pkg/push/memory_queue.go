package push

import (
	"context"
	"sync"
)

// MemoryQueue is an in-process Queue for tests and single-binary runs
// without a broker. Tasks accumulate until drained.
type MemoryQueue struct {
	mu    sync.Mutex
	tasks []Task
}

// NewMemoryQueue creates an empty MemoryQueue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
	return nil
}

// Drain returns and clears all queued tasks.
func (q *MemoryQueue) Drain() []Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	tasks := q.tasks
	q.tasks = nil
	return tasks
}
