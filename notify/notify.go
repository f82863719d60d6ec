// Package notify provides the user-visible notification surface (the "toast"
// mechanism). Stores emit fire-and-forget notifications on cart mutations and
// order placement; they never wait on delivery and never fail because a
// notification could not be shown. The front-end subscribes to render them.
package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Variant classifies a notification for presentation purposes.
type Variant string

const (
	// VariantDefault is an ordinary confirmation.
	VariantDefault Variant = "default"
	// VariantDestructive marks removals and other destructive confirmations.
	VariantDestructive Variant = "destructive"
)

// Notification is one user-visible message.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant,omitempty"`
}

// Notifier is the interface stores emit through. Implementations must not
// block: emission is fire-and-forget from the store's point of view.
type Notifier interface {
	Notify(n Notification)
}

// Broadcaster fans notifications out to any number of subscribers.
// Each subscriber gets its own buffered channel; a subscriber that stops
// draining loses messages rather than blocking the emitting store.
type Broadcaster struct {
	logger *slog.Logger
	buffer int

	// mu is a read-write mutex protecting the subscribers map. Many
	// goroutines may broadcast concurrently (readers); adding or removing a
	// subscriber takes the write lock.
	mu          sync.RWMutex
	subscribers map[string]chan Notification
}

// NewBroadcaster creates a Broadcaster with no subscribers. buffer is the
// per-subscriber channel capacity; a non-positive value falls back to 32.
func NewBroadcaster(logger *slog.Logger, buffer int) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = 32
	}
	return &Broadcaster{
		logger:      logger,
		buffer:      buffer,
		subscribers: make(map[string]chan Notification),
	}
}

// Subscribe registers a new subscriber and returns its id together with the
// channel notifications arrive on. The channel is buffered so a briefly slow
// subscriber does not stall emitters.
func (b *Broadcaster) Subscribe() (string, <-chan Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Notification, b.buffer)
	b.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown ids are
// ignored so double-unsubscribe is harmless.
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Notify delivers n to every subscriber without blocking. A subscriber whose
// buffer is full is skipped; the message is logged so the drop is visible in
// diagnostics.
func (b *Broadcaster) Notify(n Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.logger.Info("notification", "title", n.Title, "description", n.Description, "variant", n.Variant)

	for id, ch := range b.subscribers {
		select {
		case ch <- n:
		default:
			b.logger.Warn("dropping notification for slow subscriber", "subscriber", id, "title", n.Title)
		}
	}
}

// Recorder is a Notifier that remembers everything it was given, in order.
// It exists for tests that assert on emitted notifications.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify appends n to the recorded history.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
