// Package event provides scoped listener registration for document-level
// input such as key presses and pointer movement.
package event

import "sync"

// Type identifies a kind of input event.
type Type string

const (
	KeyDown      Type = "keydown"
	PointerMove  Type = "pointermove"
	PointerLeave Type = "pointerleave"
)

// KeyEscape is the key name carried by an Escape key press.
const KeyEscape = "Escape"

// Event is a single input event delivered to listeners.
type Event struct {
	Type Type
	Key  string  // set for KeyDown
	X, Y float64 // pointer position, set for pointer events
}

// Handler receives dispatched events.
type Handler func(Event)

// Target holds listeners keyed by event type. The zero value is not usable;
// create one with NewTarget.
type Target struct {
	mu        sync.Mutex
	nextID    int
	listeners map[Type]map[int]Handler
}

// NewTarget returns an empty Target.
func NewTarget() *Target {
	return &Target{listeners: make(map[Type]map[int]Handler)}
}

// Listen registers h for events of type typ. The returned function removes
// the listener; calling it more than once has no further effect.
func (t *Target) Listen(typ Type, h Handler) (remove func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	if t.listeners[typ] == nil {
		t.listeners[typ] = make(map[int]Handler)
	}
	t.listeners[typ][id] = h
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners[typ], id)
			t.mu.Unlock()
		})
	}
}

// Dispatch delivers e to every listener registered for e.Type and returns
// how many were invoked. Handlers may remove themselves (or others) while
// being dispatched; the set is snapshotted before delivery.
func (t *Target) Dispatch(e Event) int {
	t.mu.Lock()
	ids := make([]int, 0, len(t.listeners[e.Type]))
	for id := range t.listeners[e.Type] {
		ids = append(ids, id)
	}
	t.mu.Unlock()

	invoked := 0
	for _, id := range ids {
		t.mu.Lock()
		h, ok := t.listeners[e.Type][id]
		t.mu.Unlock()
		if !ok {
			continue
		}
		h(e)
		invoked++
	}
	return invoked
}

// ListenerCount reports how many listeners are registered for typ.
func (t *Target) ListenerCount(typ Type) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[typ])
}
