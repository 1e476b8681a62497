package libemitter

// HandlerSet is an insertion ordered set of handlers. Each handler is held at most once.
type HandlerSet[A any] struct {
	items []*Handler[A]
	index map[*Handler[A]]struct{}
}

// NewHandlerSet creates a set holding the given handlers, duplicates dropped.
func NewHandlerSet[A any](handlers ...*Handler[A]) *HandlerSet[A] {
	s := &HandlerSet[A]{
		index: make(map[*Handler[A]]struct{}, len(handlers)),
	}
	for _, h := range handlers {
		s.Add(h)
	}
	return s
}

// Add inserts h and reports whether it was not present yet.
func (s *HandlerSet[A]) Add(h *Handler[A]) bool {
	if h == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[*Handler[A]]struct{})
	}
	if _, ok := s.index[h]; ok {
		return false
	}
	s.index[h] = struct{}{}
	s.items = append(s.items, h)
	return true
}

// Delete removes h and reports whether it was present.
func (s *HandlerSet[A]) Delete(h *Handler[A]) bool {
	if s == nil {
		return false
	}
	if _, ok := s.index[h]; !ok {
		return false
	}
	delete(s.index, h)
	for i, item := range s.items {
		if item == h {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether h is in the set.
func (s *HandlerSet[A]) Has(h *Handler[A]) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[h]
	return ok
}

// Clear removes every handler, leaving the set usable.
func (s *HandlerSet[A]) Clear() {
	if s == nil {
		return
	}
	s.items = nil
	clear(s.index)
}

func (s *HandlerSet[A]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Snapshot returns the handlers in insertion order. The returned slice is
// owned by the caller: later mutations of the set do not affect it.
func (s *HandlerSet[A]) Snapshot() []*Handler[A] {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]*Handler[A], len(s.items))
	copy(out, s.items)
	return out
}
