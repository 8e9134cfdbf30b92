package storage

import "sync"

// Synchronized guards a store with an exclusive lock so that the foreground
// task and event observers can share it.
type Synchronized[T any] struct {
	mu    sync.Mutex
	store Store[T]
}

func NewSynchronized[T any](store Store[T]) *Synchronized[T] {
	return &Synchronized[T]{store: store}
}

func (s *Synchronized[T]) Save(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(item)
}

func (s *Synchronized[T]) List() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

func (s *Synchronized[T]) Find(p Predicate[T]) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Find(p)
}

func (s *Synchronized[T]) FindOne(p Predicate[T]) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.FindOne(p)
}

func (s *Synchronized[T]) RemoveAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RemoveAll()
}

func (s *Synchronized[T]) RemoveIf(p Predicate[T]) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RemoveIf(p)
}
