// Package push manages browser push subscriptions and hands delivery off
// to an asynchronous worker over a Redis-backed task queue.
package push

import "sync"

// Subscription is an opaque browser push subscription as handed to us by
// the frontend. Endpoint is the push service URL; Keys carries the
// client's encryption material.
type Subscription struct {
	Endpoint string            `json:"endpoint"`
	Keys     map[string]string `json:"keys,omitempty"`
}

// Registry stores subscriptions per user. It is process-local and
// non-persistent: subscriptions are lost on restart and not shared
// across instances. Construct one and pass it to the route layer.
type Registry struct {
	mu   sync.RWMutex
	subs map[uint][]Subscription
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[uint][]Subscription)}
}

// Register appends a subscription to the user's list.
func (r *Registry) Register(userID uint, sub Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[userID] = append(r.subs[userID], sub)
}

// Get returns a copy of the user's subscriptions.
func (r *Registry) Get(userID uint) []Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.subs[userID]
	if len(subs) == 0 {
		return nil
	}
	out := make([]Subscription, len(subs))
	copy(out, subs)
	return out
}
