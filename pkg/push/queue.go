package push

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// TaskQueueKey is the Redis list the server and worker share.
const TaskQueueKey = "salesupport:push:tasks"

// Task is one queued delivery: a payload for a single subscription.
type Task struct {
	ID           string       `json:"id"`
	UserID       uint         `json:"user_id"`
	Subscription Subscription `json:"subscription"`
	Message      string       `json:"message"`
	EnqueuedAt   time.Time    `json:"enqueued_at"`
}

// Queue hands delivery tasks to the worker. Enqueue returns as soon as
// the broker accepts the task; delivery outcome is never reported back.
type Queue interface {
	Enqueue(ctx context.Context, task Task) error
}

// RedisQueue implements Queue on a Redis list, the same broker shape the
// worker consumes with a blocking pop.
type RedisQueue struct {
	client *redis.Client
}

// NewRedisQueue connects a queue to the broker at redisURL.
func NewRedisQueue(redisURL string) (*RedisQueue, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisQueue{client: redis.NewClient(opts)}, nil
}

// NewRedisQueueWithClient wraps an existing client, for tests.
func NewRedisQueueWithClient(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) Enqueue(ctx context.Context, task Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now().UTC()
	}

	body, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, TaskQueueKey, body).Err()
}

// Dequeue blocks until a task is available or the timeout elapses.
// A timeout returns (nil, nil) so the worker loop can poll cooperatively.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Task, error) {
	res, err := q.client.BRPop(ctx, timeout, TaskQueueKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// BRPop returns [key, value].
	var task Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Close releases the broker connection.
func (q *RedisQueue) Close() error {
	return q.client.Close()
}
