package event

import "sync"

// CounterHandler counts events per type.
// Useful for observability and for asserting delivery in tests.
type CounterHandler struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounterHandler() *CounterHandler {
	return &CounterHandler{counts: make(map[Type]uint64)}
}

func (c *CounterHandler) Handle(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[event.Type]++
	return nil
}

func (c *CounterHandler) Count(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}
