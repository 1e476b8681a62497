package libemitter

import (
	"sync"
)

// Emitter is a synchronous, in-process event emitter. It maps events (of type K)
// to sets of handlers receiving a variadic list of arguments (of type A).
//
// Emit calls every handler registered at the moment the pass starts, on the
// caller's goroutine, in registration order. Handlers may register or remove
// handlers, including themselves, while being invoked.
type Emitter[K comparable, A any] struct {
	// Listens is the underlying registry. It may be inspected, cleared or
	// replaced directly; changes made this way bypass the emitter's lock.
	Listens Listeners[K, A]

	logger Logger
	lock   sync.RWMutex
}

// New creates a new Emitter and returns a pointer to it.
func New[K comparable, A any](opts ...Option) *Emitter[K, A] {
	cfg := newConfig(opts...)
	return &Emitter[K, A]{
		Listens: make(Listeners[K, A]),
		logger:  cfg.logger.WithField("type", "emitter"),
	}
}

// On registers h for the given event. Registering the same handler twice for
// one event is a no-op. The returned Unsubscribe removes exactly this pair.
func (e *Emitter[K, A]) On(event K, h *Handler[A]) Unsubscribe {
	if h == nil {
		return func() {}
	}

	e.lock.Lock()
	if e.Listens == nil {
		e.Listens = make(Listeners[K, A])
	}
	set, ok := e.Listens[event]
	if !ok {
		set = NewHandlerSet[A]()
		e.Listens[event] = set
	}
	added := set.Add(h)
	e.lock.Unlock()

	if added {
		e.logger.WithField("event", event).WithField("handler", h.ID()).Debugln("handler registered")
	}

	return func() {
		e.Off(event, h)
	}
}

// Listen wraps fn in a new Handler and registers it for the given event.
func (e *Emitter[K, A]) Listen(event K, fn HandlerFunc[A]) Unsubscribe {
	return e.On(event, NewHandler(fn))
}

// Emit invokes every handler registered for the given event with args.
// Handlers run on the calling goroutine and Emit returns once all of them did.
// A panicking handler aborts the pass: the panic reaches the caller and the
// remaining handlers are not invoked.
func (e *Emitter[K, A]) Emit(event K, args ...A) {
	for _, h := range e.snapshot(event) {
		h.call(args...)
	}
}

// Off removes the given handlers from event. Called with no handlers, it
// removes all of them, leaving an empty set behind for event.
// Unknown events and handlers are ignored.
func (e *Emitter[K, A]) Off(event K, handlers ...*Handler[A]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	set := e.Listens.Get(event)
	if set == nil {
		return
	}

	logger := e.logger.WithField("event", event)

	if len(handlers) == 0 {
		set.Clear()
		logger.Debugln("handlers cleared")
		return
	}

	for _, h := range handlers {
		if set.Delete(h) {
			logger.WithField("handler", h.ID()).Debugln("handler removed")
		}
	}
}

// Close removes all handlers for all events. The emitter remains usable.
func (e *Emitter[K, A]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.Listens.Clear()
	e.logger.Debugln("all handlers removed")
}

// snapshot copies the handlers of event so that the pass is not disturbed by
// registrations and removals performed by the handlers themselves.
func (e *Emitter[K, A]) snapshot(event K) []*Handler[A] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return e.Listens.Get(event).Snapshot()
}
