package libemitter

// Listeners maps event types to the set of handlers registered for them.
// It is exposed on the Emitter as Listens for introspection and bulk manipulation.
type Listeners[K comparable, A any] map[K]*HandlerSet[A]

// Get returns the handler set for event, or nil when the event is unknown.
func (l Listeners[K, A]) Get(event K) *HandlerSet[A] {
	return l[event]
}

// Size returns how many handlers are registered for event.
func (l Listeners[K, A]) Size(event K) int {
	return l[event].Size()
}

// Has reports whether event has a key, even one holding an empty set.
func (l Listeners[K, A]) Has(event K) bool {
	_, ok := l[event]
	return ok
}

// Events returns every event type currently present as a key, in no particular order.
func (l Listeners[K, A]) Events() []K {
	out := make([]K, 0, len(l))
	for k := range l {
		out = append(out, k)
	}
	return out
}

// Clear removes every event type and all of its handlers.
func (l Listeners[K, A]) Clear() {
	clear(l)
}
