package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jonathan/portfolio/internal/types"
	"github.com/jonathan/portfolio/internal/watch"
)

// EventContentChanged is the SSE event name for bundle updates.
const EventContentChanged = "content"

// ContentEvent is the payload of a content change event.
type ContentEvent struct {
	Lang  types.Lang `json:"lang"`
	Valid bool       `json:"valid"`
	Error string     `json:"error,omitempty"`
	At    time.Time  `json:"at"`
}

func newContentEvent(ev watch.Event) ContentEvent {
	out := ContentEvent{Lang: ev.Lang, Valid: ev.Valid(), At: ev.At}
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	return out
}

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// subscriberBuffer is how many events a slow subscriber may lag behind before
// events are dropped for it.
const subscriberBuffer = 16

// Broker fans content events out to every subscriber.
type Broker struct {
	mu     sync.Mutex
	subs   map[chan ContentEvent]struct{}
	closed bool
}

// NewBroker creates an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan ContentEvent]struct{})}
}

// Subscribe registers a subscriber. The channel is closed by the returned
// cancel func or by Close.
func (b *Broker) Subscribe() (<-chan ContentEvent, func()) {
	ch := make(chan ContentEvent, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
}

// Publish delivers ev to every subscriber without blocking.
func (b *Broker) Publish(ev ContentEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers returns the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends every subscription. Later subscriptions are closed immediately.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
