package anchor

import "sync"

// Events is a simple event bus generic over the event type T.
// Listeners run synchronously on the emitting goroutine, in subscription order.
type Events[T any] struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Emit sends an event to all listeners.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, l := range listeners {
		l.fn(event)
	}
}

// Subscribe adds a listener and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (e *Events[T]) Subscribe(fn func(T)) func() {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

// Len returns the number of registered listeners.
func (e *Events[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

func (e *Events[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Copy so that an Emit already iterating the old slice is unaffected.
	kept := make([]listener[T], 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	e.listeners = kept
}

// SyntheticSource is a PointerSource driven by explicit Emit calls.
// It stands in for a real event source in tests and scripted hosts.
type SyntheticSource struct {
	events Events[PointerEvent]
}

var _ PointerSource = (*SyntheticSource)(nil)

// NewSyntheticSource creates an empty SyntheticSource.
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

// Subscribe implements PointerSource.
func (s *SyntheticSource) Subscribe(fn func(PointerEvent)) func() {
	return s.events.Subscribe(fn)
}

// Emit delivers ev to every subscriber.
func (s *SyntheticSource) Emit(ev PointerEvent) {
	s.events.Emit(ev)
}

// MoveTo emits a move to (x, y) in a source without scrolling.
func (s *SyntheticSource) MoveTo(x, y float64) {
	s.Emit(PointerEvent{PageX: x, PageY: y, ClientX: x, ClientY: y})
}

// Subscribers returns the number of active subscribers.
func (s *SyntheticSource) Subscribers() int {
	return s.events.Len()
}
