package domain

import (
	"sync"
	"time"
)

const sessionBufferSize = 16

// Hub is the in-process broadcast channel for the mural. Every live viewer
// holds one subscription; Publish fans an event out to all of them with
// non-blocking sends, so a slow session drops events instead of stalling
// the writer (at-most-once delivery).
type Hub struct {
	mu        sync.RWMutex
	sessions  map[string]chan Event
	stats     HubStats
	startTime time.Time
}

type HubStats struct {
	ActiveSessions int    `json:"activeSessions"`
	TotalEvents    int    `json:"totalEvents"`
	DroppedEvents  int    `json:"droppedEvents"`
	Uptime         string `json:"uptime"`
}

func NewHub() *Hub {
	return &Hub{
		sessions:  make(map[string]chan Event),
		startTime: time.Now(),
	}
}

// Subscribe registers a session and returns the channel its events arrive
// on. The channel is closed by Unsubscribe, never by the publisher.
func (h *Hub) Subscribe(sessionID string) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	events := make(chan Event, sessionBufferSize)
	h.sessions[sessionID] = events
	h.stats.ActiveSessions = len(h.sessions)
	return events
}

func (h *Hub) Unsubscribe(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	events, exists := h.sessions[sessionID]
	if !exists {
		return
	}
	delete(h.sessions, sessionID)
	close(events)
	h.stats.ActiveSessions = len(h.sessions)
}

// Publish delivers the event to every current session. Returns
// ErrBroadcastFull if at least one session dropped it; the event is still
// delivered to everyone else.
func (h *Hub) Publish(event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	for _, events := range h.sessions {
		select {
		case events <- event:
		default:
			h.stats.DroppedEvents++
			err = ErrBroadcastFull
		}
	}
	h.stats.TotalEvents++
	return err
}

func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := h.stats
	stats.Uptime = time.Since(h.startTime).String()
	return stats
}

// Close drops every session. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, events := range h.sessions {
		close(events)
		delete(h.sessions, id)
	}
	h.stats.ActiveSessions = 0
}
