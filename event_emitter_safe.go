package libemitter

// TryEmit behaves like Emit, except that a panicking handler is recovered and
// reported as a *HandlerPanicError (matching ErrHandlerPanic). The pass still
// stops at the failing handler.
func (e *Emitter[K, A]) TryEmit(event K, args ...A) error {
	for _, h := range e.snapshot(event) {
		if err := e.tryCall(event, h, args); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter[K, A]) tryCall(event K, h *Handler[A], args []A) (err error) {
	defer func() {
		if perr := WrapHandlerPanic(event, h.ID(), recover()); perr != nil {
			e.logger.WithField("event", event).
				WithField("handler", h.ID()).
				Errorf("handler aborted emission: %s", perr.err)
			err = perr
		}
	}()

	h.call(args...)
	return nil
}
