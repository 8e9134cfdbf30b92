package eventbus

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
)

// Handle is the owning reference to an observer registered on a Bus.
// The bus only keeps a weak pointer to it: once the owner calls Release,
// or drops the last reference and the GC reclaims it, the observer is no
// longer called and its registration is pruned.
type Handle struct {
	mu       sync.Mutex // serialises Handle calls on the observer
	observer event.Observer
	released atomic.Bool
}

func NewHandle(observer event.Observer) *Handle {
	return &Handle{observer: observer}
}

// Release detaches the observer from every bus it is registered on.
// It is idempotent.
func (h *Handle) Release() {
	h.released.Store(true)
}

func (h *Handle) IsLive() bool {
	return !h.released.Load()
}

// deliver calls the observer under its own lock.
// A panic is turned into an error so the bus stays usable, except a
// re-entrant Emit which keeps unwinding.
func (h *Handle) deliver(evt event.Event) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			if r == errors.ErrReentrantEmit {
				panic(r)
			}
			err = fmt.Errorf("%w: %v", errors.ErrObserverPanic, r)
		}
	}()

	if err := h.observer.Handle(evt); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrHandlerFailure, err)
	}
	return nil
}
