package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/storage"
)

const sequenceBandwidth = 100

// Namespaces used by the peer binary.
const (
	GroupsNamespace   = "groups"
	MessagesNamespace = "messages"
)

var _ storage.Store[int] = (*BadgerStore[int])(nil)

// BadgerStore is a durable storage.Store backed by BadgerDB.
// Keys are formatted as "rec:{namespace}:{sequence_padded}" so that a prefix
// scan returns items in insertion order; values are CBOR encoded.
type BadgerStore[T any] struct {
	db     *badger.DB
	log    *slog.Logger
	prefix []byte
	seq    *badger.Sequence
	enc    cbor.EncMode
}

func NewBadgerStore[T any](db *badger.DB, log *slog.Logger, namespace string) (*BadgerStore[T], error) {
	seq, err := db.GetSequence([]byte("seq:"+namespace), sequenceBandwidth)
	if err != nil {
		return nil, wrap(err)
	}
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		_ = seq.Release()
		return nil, err
	}
	return &BadgerStore[T]{
		db:     db,
		log:    log,
		prefix: namespacePrefix(namespace),
		seq:    seq,
		enc:    enc,
	}, nil
}

// Close returns the leased sequence numbers. The DB itself is owned by the caller.
func (s *BadgerStore[T]) Close() error {
	return wrap(s.seq.Release())
}

func (s *BadgerStore[T]) Save(item T) error {
	n, err := s.seq.Next()
	if err != nil {
		return wrap(err)
	}
	data, err := s.enc.Marshal(item)
	if err != nil {
		return wrap(err)
	}
	key := fmt.Appendf(nil, "%s%020d", s.prefix, n)
	return wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}))
}

func (s *BadgerStore[T]) List() ([]T, error) {
	return s.Find(storage.PredicateFunc[T](func(T) bool { return true }))
}

func (s *BadgerStore[T]) Find(p storage.Predicate[T]) ([]T, error) {
	var res []T
	err := s.db.View(func(txn *badger.Txn) error {
		return s.scan(txn, func(_ []byte, item T) (bool, error) {
			if p.Matches(item) {
				res = append(res, item)
			}
			return true, nil
		})
	})
	if err != nil {
		return nil, wrap(err)
	}
	return res, nil
}

func (s *BadgerStore[T]) FindOne(p storage.Predicate[T]) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		return s.scan(txn, func(_ []byte, item T) (bool, error) {
			if p.Matches(item) {
				found, ok = item, true
				return false, nil
			}
			return true, nil
		})
	})
	if err != nil {
		var zero T
		return zero, false, wrap(err)
	}
	return found, ok, nil
}

func (s *BadgerStore[T]) RemoveAll() (int, error) {
	return s.RemoveIf(storage.PredicateFunc[T](func(T) bool { return true }))
}

// RemoveIf deletes the matching records in a single transaction.
func (s *BadgerStore[T]) RemoveIf(p storage.Predicate[T]) (int, error) {
	var removed int
	err := s.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte
		err := s.scan(txn, func(key []byte, item T) (bool, error) {
			if p.Matches(item) {
				keys = append(keys, key)
			}
			return true, nil
		})
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		removed = len(keys)
		return nil
	})
	if err != nil {
		return 0, wrap(err)
	}
	s.log.Debug("Records removed", "prefix", string(s.prefix), "count", removed)
	return removed, nil
}

// scan walks the namespace in key order until fn returns false.
func (s *BadgerStore[T]) scan(txn *badger.Txn, fn func(key []byte, item T) (bool, error)) error {
	return scanPrefix(txn, s.prefix, fn)
}

func scanPrefix[T any](txn *badger.Txn, prefix []byte, fn func(key []byte, item T) (bool, error)) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		entry := it.Item()
		var item T
		err := entry.Value(func(value []byte) error {
			return cbor.Unmarshal(value, &item)
		})
		if err != nil {
			return err
		}
		next, err := fn(entry.KeyCopy(nil), item)
		if err != nil {
			return err
		}
		if !next {
			return nil
		}
	}
	return nil
}

func namespacePrefix(namespace string) []byte {
	return []byte(fmt.Sprintf("rec:%s:", namespace))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errors.ErrStorageFailure, err)
}
