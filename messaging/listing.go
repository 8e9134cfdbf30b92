package messaging

import (
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/storage"
)

// Listing iterates over the items of a store matching a predicate.
// The query runs once, on the first call to Next; later store mutations
// are not seen by the listing.
//
//	l := ListGroups(peerID, store)
//	for l.Next() {
//		g := l.Item()
//	}
//	if err := l.Err(); err != nil {...}
type Listing[T any] struct {
	store  storage.Store[T]
	pred   storage.Predicate[T]
	items  []T
	loaded bool
	next   int
	err    error
}

func NewListing[T any](store storage.Store[T], pred storage.Predicate[T]) *Listing[T] {
	return &Listing[T]{store: store, pred: pred}
}

// Next advances to the next item, it returns false at the end or on error.
func (l *Listing[T]) Next() bool {
	if !l.loaded {
		l.loaded = true
		l.items, l.err = l.store.Find(l.pred)
		if l.err != nil {
			return false
		}
	}
	if l.next >= len(l.items) {
		return false
	}
	l.next++
	return true
}

// Item returns the current item. Only valid after Next returned true.
func (l *Listing[T]) Item() T {
	return l.items[l.next-1]
}

func (l *Listing[T]) Err() error {
	return l.err
}

// Collect drains the listing.
func (l *Listing[T]) Collect() ([]T, error) {
	var res []T
	for l.Next() {
		res = append(res, l.Item())
	}
	return res, l.Err()
}

// ListGroups lists the groups created by a peer.
func ListGroups(peerID string, store storage.Store[domain.Group]) *Listing[domain.Group] {
	return NewListing[domain.Group](store, GroupsByCreator(peerID))
}

// ListMessages lists the messages of a topic.
func ListMessages(topic string, store storage.Store[domain.Message]) *Listing[domain.Message] {
	return NewListing[domain.Message](store, MessagesInTopic(topic))
}
