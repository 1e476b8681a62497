package libemitter

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerPanicError is returned by TryEmit when a handler panics. The pass is
// aborted at that handler; the ones after it were not invoked.
type HandlerPanicError struct {
	Event     any
	HandlerID string
	Value     any
	err       error
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("handler %s panicked on event %v: %s", e.HandlerID, e.Event, e.err)
}

func (e *HandlerPanicError) Unwrap() error { return e.err }

// Is makes every HandlerPanicError match ErrHandlerPanic.
func (e *HandlerPanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}

// WrapHandlerPanic turns a recovered panic value into a *HandlerPanicError.
// It returns nil when there was nothing recovered.
func WrapHandlerPanic(event any, handlerID string, recovered any) *HandlerPanicError {
	if recovered == nil {
		return nil
	}

	var err error
	switch v := recovered.(type) {
	case error:
		err = errors.WithStack(v)
	default:
		err = errors.Errorf("%v", v)
	}

	return &HandlerPanicError{
		Event:     event,
		HandlerID: handlerID,
		Value:     recovered,
		err:       err,
	}
}
