package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Storage
	ErrStorageFailure = fmt.Errorf("storage failure")

	// Event delivery
	ErrHandlerFailure = fmt.Errorf("observer failed to handle event")
	ErrObserverPanic  = fmt.Errorf("observer panicked while handling event")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")
	ErrReentrantEmit  = fmt.Errorf("emit called while the bus is delivering")

	// Network boundary
	ErrSerialization    = fmt.Errorf("cannot deserialize message")
	ErrNetwork          = fmt.Errorf("network failure")
	ErrNotSubscribed    = fmt.Errorf("topic is not subscribed")
	ErrInvalidStaticKey = fmt.Errorf("static key signature does not match identity")

	// CLI
	ErrUnknownCommand = fmt.Errorf("unknown command")
	ErrMissingArgs    = fmt.Errorf("missing arguments")
)
