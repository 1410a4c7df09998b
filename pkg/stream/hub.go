// Package stream pushes camera packets to connected monitors over
// websocket.
package stream

import (
	"sync"
)

// Hub fans packets out to subscribers. A slow subscriber drops packets
// rather than stalling the producer.
type Hub struct {
	lock sync.Mutex
	subs map[chan []byte]struct{}
}

// Subscribe registers a new subscriber channel.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 4)
	h.lock.Lock()
	if h.subs == nil {
		h.subs = make(map[chan []byte]struct{})
	}
	h.subs[ch] = struct{}{}
	h.lock.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.lock.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.lock.Unlock()
}

// Publish delivers pkt to every subscriber that can take it.
func (h *Hub) Publish(pkt []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()
	for ch := range h.subs {
		select {
		case ch <- pkt:
		default:
		}
	}
}
