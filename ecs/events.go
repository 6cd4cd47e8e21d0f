package ecs

// ContactEvent is one begin or separate notification from the physics step.
// Entity 0 stands for a shape that belongs to no entity.
type ContactEvent struct {
	A       Entity
	B       Entity
	Started bool
}

// Involves reports whether e is one of the two participants.
func (ev ContactEvent) Involves(e Entity) bool {
	return e.Valid() && (ev.A == e || ev.B == e)
}

// ContactQueue is a single-consumer FIFO. Drain hands the whole batch to
// the caller and empties the queue; nothing is ever replayed.
type ContactQueue struct {
	items []ContactEvent
}

// Push adds an event.
func (q *ContactQueue) Push(evt ContactEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *ContactQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *ContactQueue) Drain() []ContactEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *ContactQueue) discard() {
	if q == nil {
		return
	}
	q.items = nil
}
