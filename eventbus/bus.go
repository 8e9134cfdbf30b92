// Package eventbus fans network events out to in-process observers.
//
// Delivery is synchronous: Emit returns once every live observer has handled
// the event, in registration order. Observers are held through weak pointers
// so the bus never extends their lifetime.
//
// The bus has a single writer. An Emit made while another one is delivering,
// typically by an observer on the bus that calls it, panics with
// ErrReentrantEmit. Observers may Subscribe, in which case the new observer
// only sees later events.
package eventbus

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
)

var _ contract.Emitter = (*Bus)(nil)

type registration struct {
	ref weak.Pointer[Handle]
}

// access returns the handle if its owner still holds it.
func (r registration) access() (*Handle, bool) {
	h := r.ref.Value()
	if h == nil || !h.IsLive() {
		return nil, false
	}
	return h, true
}

type Bus struct {
	log           *slog.Logger
	emitting      atomic.Bool // set while an Emit is delivering
	mu            sync.Mutex // guards registrations
	registrations []registration
}

func New(log *slog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe records a weak reference to h. Registering the same handle
// twice delivers every event to it twice.
func (b *Bus) Subscribe(h *Handle) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registrations = append(b.registrations, registration{ref: weak.Make(h)})
}

// Len returns the number of registrations currently held, including dead
// ones not yet pruned.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.registrations)
}

// Emit delivers evt to every live observer in registration order.
// The first observer failure stops the delivery and is returned; the bus
// remains usable. Dead registrations met on the way are pruned before
// returning.
func (b *Bus) Emit(evt event.Event) error {
	if !b.emitting.CompareAndSwap(false, true) {
		b.log.Error("Emit called while the bus is delivering", "type", evt.Type)
		panic(errors.ErrReentrantEmit)
	}
	defer b.emitting.Store(false)

	b.mu.Lock()
	snapshot := slices.Clone(b.registrations)
	b.mu.Unlock()

	cleanup := false
	defer func() {
		if cleanup {
			b.prune()
		}
	}()

	for i, r := range snapshot {
		h, ok := r.access()
		if !ok {
			cleanup = true
			continue
		}
		if err := h.deliver(evt); err != nil {
			b.log.Error("Event delivery aborted",
				"type", evt.Type,
				"observer_index", i,
				"error", err)
			return err
		}
	}
	return nil
}

// prune keeps only the registrations whose owner is still live.
// Registrations added during the Emit are kept.
func (b *Bus) prune() {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.registrations)
	b.registrations = slices.DeleteFunc(b.registrations, func(r registration) bool {
		_, ok := r.access()
		return !ok
	})
	b.log.Debug("Pruned dead observers", "removed", before-len(b.registrations))
}
