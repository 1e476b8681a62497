package libemitter

import (
	"github.com/google/uuid"
)

type (
	// HandlerFunc is the callable wrapped by a Handler.
	HandlerFunc[A any] func(args ...A)

	// Handler wraps a HandlerFunc so it can be registered and removed by identity.
	// Go funcs are not comparable, so the *Handler pointer is the identity: two
	// handlers built from the very same func are still distinct registrations.
	Handler[A any] struct {
		id string
		fn HandlerFunc[A]
	}

	// Unsubscribe removes the registration it was returned for. It is safe to
	// call any number of times, and after the emitter state was cleared or replaced.
	Unsubscribe func()
)

// NewHandler creates a new Handler and returns a pointer to it.
func NewHandler[A any](fn HandlerFunc[A]) *Handler[A] {
	return &Handler[A]{
		id: uuid.NewString(),
		fn: fn,
	}
}

// ID returns the random identifier of the handler. Only used to tag log lines.
func (h *Handler[A]) ID() string {
	return h.id
}

func (h *Handler[A]) call(args ...A) {
	if h.fn == nil {
		return
	}
	h.fn(args...)
}
