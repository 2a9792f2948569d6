package station

import "github.com/google/uuid"

// Connection identifies one subscription to a Signal.
type Connection struct {
	id uuid.UUID
}

// Signal is an explicit observer list. Emission is synchronous and
// immediate on the calling goroutine, in connection order; the whole
// document model runs on a single logical thread, so there is no
// locking. The zero value is ready to use.
type Signal[T any] struct {
	order    []uuid.UUID
	handlers map[uuid.UUID]func(T)
}

// Connect subscribes fn and returns a token for Disconnect.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	if s.handlers == nil {
		s.handlers = make(map[uuid.UUID]func(T))
	}
	id := uuid.New()
	s.handlers[id] = fn
	s.order = append(s.order, id)
	return Connection{id: id}
}

// Disconnect removes a subscription. Unknown tokens are ignored.
func (s *Signal[T]) Disconnect(c Connection) {
	if _, ok := s.handlers[c.id]; !ok {
		return
	}
	delete(s.handlers, c.id)
	for i, id := range s.order {
		if id == c.id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Signal[T]) emit(ev T) {
	for _, id := range s.order {
		if fn, ok := s.handlers[id]; ok {
			fn(ev)
		}
	}
}
