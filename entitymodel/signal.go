package entitymodel

// Subscription represents an active listener on a Signal.
// Cancel detaches the listener; cancelling twice is a no-op.
type Subscription struct {
	cancel func()
}

// Cancel detaches the subscription from its Signal.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

type signalSubscriber[T any] struct {
	id uint64
	fn func(T)
}

// Signal is a hot, multicast broadcast channel: listeners attached after an
// emission never see that emission, there is no buffering or replay, and
// delivery is synchronous on the emitting goroutine in subscription order.
//
// Emission iterates a snapshot of the subscriber list, so a listener that
// subscribes or cancels during dispatch does not affect the in-flight emission.
type Signal[T any] struct {
	subscribers []signalSubscriber[T]
	nextID      uint64
}

// NewSignal creates an empty Signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe attaches a listener and returns its Subscription.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, signalSubscriber[T]{id: id, fn: fn})

	return Subscription{cancel: func() { s.unsubscribe(id) }}
}

// SubscriberCount reports the number of attached listeners.
func (s *Signal[T]) SubscriberCount() int {
	return len(s.subscribers)
}

func (s *Signal[T]) unsubscribe(id uint64) {
	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

func (s *Signal[T]) emit(value T) {
	current := make([]signalSubscriber[T], len(s.subscribers))
	copy(current, s.subscribers)

	for _, sub := range current {
		sub.fn(value)
	}
}

func (s *Signal[T]) close() {
	s.subscribers = nil
}
