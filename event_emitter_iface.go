package libemitter

type (
	// Publisher is the emitting half of an EventEmitter.
	Publisher[K comparable, A any] interface {
		// Emit triggers all handlers registered for the given event synchronously.
		Emit(event K, args ...A)
	}

	// Subscriber is the registering half of an EventEmitter.
	Subscriber[K comparable, A any] interface {
		// On registers a handler for the given event.
		On(event K, h *Handler[A]) Unsubscribe

		// Listen registers a plain func for the given event.
		Listen(event K, fn HandlerFunc[A]) Unsubscribe

		// Off removes the given handlers from the event, or all of them if none is given.
		Off(event K, handlers ...*Handler[A])
	}

	EventEmitter[K comparable, A any] interface {
		Publisher[K, A]
		Subscriber[K, A]

		// Close removes all handlers for all events.
		Close()
	}
)

var _ EventEmitter[string, any] = (*Emitter[string, any])(nil)
