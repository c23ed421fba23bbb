package push

import (
	"context"
	"log"
	"time"
)

// Worker drains the task queue and hands each task to the sender.
// Delivery is at most once: a failed send is logged and dropped, never
// retried or reported back to the enqueuer.
type Worker struct {
	queue  *RedisQueue
	sender Sender
}

// NewWorker wires a queue to a sender.
func NewWorker(queue *RedisQueue, sender Sender) *Worker {
	return &Worker{queue: queue, sender: sender}
}

// Run consumes tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		task, err := w.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("push worker: dequeue failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if task == nil {
			continue
		}

		if err := w.sender.Send(ctx, *task); err != nil {
			log.Printf("push worker: task %s for user %d not delivered: %v", task.ID, task.UserID, err)
			continue
		}
		log.Printf("push worker: task %s delivered to user %d", task.ID, task.UserID)
	}
}
