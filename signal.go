package rowan

// destroySignal is a single-shot observer list used for destroy
// notifications. Handlers run exactly once, in subscription order, when the
// owner is torn down; the list is drained afterwards so late subscribers are
// never called.
type destroySignal struct {
	handlers []*destroyHandler
	fired    bool
}

type destroyHandler struct {
	fn func()
}

// subscribe registers fn and returns a cancel function. Cancel is safe to
// call more than once, after the signal has fired, and from inside another
// handler of the same signal.
func (s *destroySignal) subscribe(fn func()) (cancel func()) {
	if s.fired {
		return func() {}
	}
	h := &destroyHandler{fn: fn}
	s.handlers = append(s.handlers, h)
	return func() {
		h.fn = nil
		for i, have := range s.handlers {
			if have == h {
				copy(s.handlers[i:], s.handlers[i+1:])
				s.handlers[len(s.handlers)-1] = nil
				s.handlers = s.handlers[:len(s.handlers)-1]
				return
			}
		}
	}
}

// fire runs every live handler once and drains the list. Subsequent calls
// are no-ops, preserving the fire-once contract even when teardown paths
// overlap (a surface destroying its scene node while that node is already
// being destroyed).
func (s *destroySignal) fire() {
	if s.fired {
		return
	}
	s.fired = true
	handlers := s.handlers
	s.handlers = nil
	for _, h := range handlers {
		if h.fn != nil {
			h.fn()
		}
	}
}
