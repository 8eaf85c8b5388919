package notification

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Hub keeps live subscribers per event and implements Publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan SetlistChange]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[chan SetlistChange]struct{})}
}

// Subscribe returns a channel of changes for eventID and a function that
// detaches and closes it.
func (h *Hub) Subscribe(eventID uuid.UUID) (<-chan SetlistChange, func()) {
	ch := make(chan SetlistChange, subscriberBuffer)

	h.mu.Lock()
	if h.subs[eventID] == nil {
		h.subs[eventID] = make(map[chan SetlistChange]struct{})
	}
	h.subs[eventID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[eventID], ch)
			if len(h.subs[eventID]) == 0 {
				delete(h.subs, eventID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish drops the change for subscribers whose buffer is full.
func (h *Hub) Publish(_ context.Context, change SetlistChange) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[change.EventID] {
		select {
		case ch <- change:
		default:
			log.Warn("live subscriber too slow, dropping change", "event_id", change.EventID, "type", change.Type)
		}
	}
	return nil
}

// Subscribers reports how many live connections watch eventID.
func (h *Hub) Subscribers(eventID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[eventID])
}
