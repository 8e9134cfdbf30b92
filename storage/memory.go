package storage

import (
	"slices"

	"github.com/samber/lo"
)

var _ Store[int] = (*MemoryStore[int])(nil)

// MemoryStore keeps items in a slice. It never fails.
// It is not synchronised: wrap it with Synchronized when shared.
type MemoryStore[T any] struct {
	items []T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

func (s *MemoryStore[T]) Save(item T) error {
	s.items = append(s.items, item)
	return nil
}

func (s *MemoryStore[T]) List() ([]T, error) {
	return slices.Clone(s.items), nil
}

func (s *MemoryStore[T]) Find(p Predicate[T]) ([]T, error) {
	return lo.Filter(s.items, func(item T, _ int) bool {
		return p.Matches(item)
	}), nil
}

func (s *MemoryStore[T]) FindOne(p Predicate[T]) (T, bool, error) {
	item, ok := lo.Find(s.items, p.Matches)
	return item, ok, nil
}

func (s *MemoryStore[T]) RemoveAll() (int, error) {
	n := len(s.items)
	s.items = nil
	return n, nil
}

func (s *MemoryStore[T]) RemoveIf(p Predicate[T]) (int, error) {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, p.Matches)
	return before - len(s.items), nil
}
