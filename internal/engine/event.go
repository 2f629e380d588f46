package engine

// Event is a multi-cast event carrying one argument. Listeners run
// synchronously, in subscription order, on the goroutine that calls Invoke.
type Event[T any] struct {
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// AddListener registers callback and returns a function that removes it.
// Go cannot compare funcs, so removal goes through the returned closure.
func (e *Event[T]) AddListener(callback func(T)) (remove func()) {
	if callback == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: callback})
	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Invoke calls all registered listeners with arg.
func (e *Event[T]) Invoke(arg T) {
	// Snapshot so a listener may unsubscribe itself mid-dispatch.
	ls := append([]listener[T](nil), e.listeners...)
	for _, l := range ls {
		l.fn(arg)
	}
}

// GetListenerCount returns the number of registered listeners
func (e *Event[T]) GetListenerCount() int {
	return len(e.listeners)
}
