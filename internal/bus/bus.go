package bus

// Bus is an in-process pub-sub channel. Publish delivers the event to
// every subscriber synchronously, in registration order. The runtime
// model of this core is single-threaded event dispatch, so there is no
// locking; a Bus must not be shared across goroutines.
type Bus[T any] struct {
	nextID      int
	order       []int
	subscribers map[int]func(T)
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		subscribers: make(map[int]func(T)),
	}
}

// Subscribe registers handler and returns a function that removes it.
// Unsubscribing twice is a no-op.
func (b *Bus[T]) Subscribe(handler func(T)) func() {
	id := b.nextID
	b.nextID++
	b.order = append(b.order, id)
	b.subscribers[id] = handler

	return func() {
		delete(b.subscribers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers event to all current subscribers.
func (b *Bus[T]) Publish(event T) {
	for _, id := range b.order {
		if handler, ok := b.subscribers[id]; ok {
			handler(event)
		}
	}
}

// Len returns the number of active subscribers.
func (b *Bus[T]) Len() int {
	return len(b.subscribers)
}
