package libemitter

// Topic is an event name bound at compile time to the type of its arguments.
// Several topics with different argument types can share one
// Emitter[string, any]; Subscribe and Publish keep each call site typed.
type Topic[A any] struct {
	name string
}

func NewTopic[A any](name string) Topic[A] {
	return Topic[A]{name: name}
}

func (t Topic[A]) Name() string {
	return t.name
}

// Subscribe registers fn for topic t on s.
// Arguments emitted for t without going through Publish must hold values of
// type A; anything else makes the handler panic on conversion.
func Subscribe[A any](s Subscriber[string, any], t Topic[A], fn HandlerFunc[A]) Unsubscribe {
	return s.Listen(t.name, func(args ...any) {
		typed := make([]A, len(args))
		for i, arg := range args {
			if arg == nil {
				continue
			}
			typed[i] = arg.(A)
		}
		fn(typed...)
	})
}

// Publish emits topic t with args on p.
func Publish[A any](p Publisher[string, any], t Topic[A], args ...A) {
	raw := make([]any, len(args))
	for i, arg := range args {
		raw[i] = arg
	}
	p.Emit(t.name, raw...)
}
