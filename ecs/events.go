package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO queue. The world flushes it at the end of every
// frame, so events live for exactly one frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each calls fn for every queued event of the given type, in push order.
func (q *EventQueue) Each(typ string, fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			fn(evt)
		}
	}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
