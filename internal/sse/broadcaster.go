// Package sse pushes game events to connected browser clients.
package sse

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

const (
	// clientBuffer is the per-client channel buffer size.
	clientBuffer = 10

	// sendTimeout bounds how long a broadcast waits on a slow client.
	sendTimeout = 1 * time.Second
)

// Message is a single event delivered to clients.
type Message struct {
	Event string // event type (e.g. "round-played")
	Data  string // JSON payload
}

// Hub fans game events out to all subscribed clients. Slow clients miss
// events rather than blocking the game.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan Message]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[chan Message]struct{})}
}

// Subscribe registers a new client and returns its message channel.
func (h *Hub) Subscribe() chan Message {
	ch := make(chan Message, clientBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a client. The channel is dropped rather than closed so
// an in-flight broadcast cannot send on a closed channel.
func (h *Hub) Unsubscribe(ch chan Message) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast marshals payload to JSON and sends it to every client.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("sse: marshal %s payload: %v", event, err)
		return
	}

	h.mu.RLock()
	clients := make([]chan Message, 0, len(h.clients))
	for ch := range h.clients {
		clients = append(clients, ch)
	}
	h.mu.RUnlock()

	msg := Message{Event: event, Data: string(data)}

	// Send WITHOUT holding the lock.
	for _, ch := range clients {
		select {
		case ch <- msg:
			// Message sent successfully
		case <-time.After(sendTimeout):
			// Timeout - skip this client to avoid blocking
		}
	}
}
