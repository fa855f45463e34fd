// Package notify is the realtime channel of the client: an in-process
// hub for workflow events plus a filesystem watcher that notices other
// processes writing the shared store. Consumers treat every event as a
// signal to re-fetch; nothing here patches state incrementally.
package notify

import "sync"

// Kind classifies a push event.
type Kind string

const (
	KindProjectAssigned Kind = "project_assigned"
	KindProjectUpdated  Kind = "project_updated"
	KindStatusChanged   Kind = "status_changed"
	KindPoolAdded       Kind = "pool_added"
	// KindStoreChanged means another process wrote the database; the
	// affected projects are unknown.
	KindStoreChanged Kind = "store_changed"
)

// Event is one push notification.
type Event struct {
	Kind      Kind
	ProjectID string // empty for store-level events
}

// Hub fan-outs events to subscribers. Publishing never blocks: a
// subscriber that is not draining its channel misses events, which is
// acceptable because every event only means "re-fetch soon".
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe returns a buffered event channel and a cancel function
// that must be called when the consumer goes away.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber with room in its buffer.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
