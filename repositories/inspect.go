package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// Record is a stored item with its key.
type Record[T any] struct {
	Key  string
	Item T
}

// ReadNamespace lists the records of a namespace without leasing a sequence,
// so it works on a database opened read-only.
func ReadNamespace[T any](db *badger.DB, namespace string) ([]Record[T], error) {
	var res []Record[T]
	err := db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, namespacePrefix(namespace), func(key []byte, item T) (bool, error) {
			res = append(res, Record[T]{Key: string(key), Item: item})
			return true, nil
		})
	})
	if err != nil {
		return nil, wrap(err)
	}
	return res, nil
}
