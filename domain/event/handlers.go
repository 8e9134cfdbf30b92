package event

// Observer Each observer reacts to the events it cares about and ignores the rest.
// Handle may mutate the observer; the bus serialises calls to a given observer.
// A returned error aborts the delivery of the current event to later observers.
type Observer interface {
	Handle(event Event) error
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func(event Event) error

func (f ObserverFunc) Handle(event Event) error {
	return f(event)
}
