//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
// Package storage defines the record store used by the messaging workflows.
package storage

// Store is a typed, insertion ordered collection.
// Reads return snapshots that later mutations do not affect.
// Every call is atomic on its own; there is no transaction across calls.
type Store[T any] interface {
	// Save appends item. No deduplication happens at this layer.
	Save(item T) error
	// List returns every item in insertion order.
	List() ([]T, error)
	// Find returns the items matching p, in insertion order.
	Find(p Predicate[T]) ([]T, error)
	// FindOne returns the first item matching p.
	FindOne(p Predicate[T]) (T, bool, error)
	// RemoveAll empties the store and returns how many items it held.
	RemoveAll() (int, error)
	// RemoveIf keeps exactly the items not matching p and returns how many were removed.
	RemoveIf(p Predicate[T]) (int, error)
}
