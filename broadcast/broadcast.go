// Package broadcast is the in-process fan-out between the ingest path and
// long-lived SSE readers. Delivery is bounded, lossy and newest-favored:
// events are advisory UI refresh hints, not a durable log, so a slow reader
// loses its oldest queued event rather than stalling publishers.
package broadcast

import (
	"encoding/json"
	"sync"
)

// queueCapacity 는 구독자별 대기열 크기다. 가득 차면 가장 오래된 메시지를
// 버리고 새 메시지를 넣는다.
const queueCapacity = 64

// Message is one serialized event ready for the wire.
type Message struct {
	Event string
	Data  string
}

// Subscriber owns a bounded queue of messages. Read from C until the
// connection ends, then hand the subscriber back to Hub.Unregister.
type Subscriber struct {
	C chan Message
}

// Hub keeps the active subscriber set. The mutex guards add/remove/iterate
// only; enqueues happen outside the lock so a slow consumer never blocks
// registration.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Register adds a new subscriber with an empty queue.
func (h *Hub) Register() *Subscriber {
	s := &Subscriber{C: make(chan Message, queueCapacity)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unregister removes a subscriber; safe to call multiple times. The channel
// is left open — a concurrent publish may still enqueue into it, and the
// abandoned queue is reclaimed with the subscriber.
func (h *Hub) Unregister(s *Subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

// SubscriberCount returns the current size of the active set.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Publish serializes the payload and enqueues it on every active subscriber.
// On a full queue the oldest message is evicted to make room. Publishing with
// zero subscribers is a no-op; nothing is replayed later.
func (h *Hub) Publish(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := Message{Event: event, Data: string(data)}

	h.mu.Lock()
	snapshot := make([]*Subscriber, 0, len(h.subs))
	for s := range h.subs {
		snapshot = append(snapshot, s)
	}
	h.mu.Unlock()

	for _, s := range snapshot {
		enqueue(s, msg)
	}
	return nil
}

func enqueue(s *Subscriber, msg Message) {
	select {
	case s.C <- msg:
		return
	default:
	}

	// Full: drop the oldest and retry once. If a concurrent enqueue raced us
	// into the freed slot, the message is dropped — best effort by contract.
	select {
	case <-s.C:
	default:
	}
	select {
	case s.C <- msg:
	default:
	}
}
