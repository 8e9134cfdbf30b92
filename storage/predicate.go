package storage

// Predicate decides membership for a store query.
// Implementations must be pure for the duration of a scan and cheap to copy:
// stores evaluate them against their current contents on every call.
type Predicate[T any] interface {
	Matches(item T) bool
}

// PredicateFunc adapts a function to a Predicate.
type PredicateFunc[T any] func(item T) bool

func (f PredicateFunc[T]) Matches(item T) bool {
	return f(item)
}

// Equals matches items equal to value.
func Equals[T comparable](value T) Predicate[T] {
	return PredicateFunc[T](func(item T) bool { return item == value })
}

// Not inverts a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(item T) bool { return !p.Matches(item) })
}

// All matches items satisfying every given predicate.
func All[T any](predicates ...Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(item T) bool {
		for _, p := range predicates {
			if !p.Matches(item) {
				return false
			}
		}
		return true
	})
}
