package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/storage"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore[T any](t *testing.T, db *badger.DB, namespace string) *BadgerStore[T] {
	store, err := NewBadgerStore[T](db, logs.GetLoggerFromLevel(slog.LevelDebug), namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func Test_BadgerStore_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	store := newStore[uint32](t, openDB(t), "numbers")

	values := []uint32{2, 3, 56, 33, 22, 384, 384, 384}
	for _, v := range values {
		req.NoError(store.Save(v))
	}

	items, err := store.List()
	req.NoError(err)
	req.Equal(values, items)
}

func Test_BadgerStore_RemoveIf(t *testing.T) {
	req := require.New(t)
	store := newStore[uint32](t, openDB(t), "numbers")
	for _, v := range []uint32{2, 3, 56, 33, 22, 384, 384, 384} {
		req.NoError(store.Save(v))
	}

	removed, err := store.RemoveIf(storage.Equals[uint32](384))
	req.NoError(err)
	req.Equal(3, removed)

	items, err := store.List()
	req.NoError(err)
	req.Equal([]uint32{2, 3, 56, 33, 22}, items)

	removed, err = store.RemoveAll()
	req.NoError(err)
	req.Equal(5, removed)
	items, err = store.List()
	req.NoError(err)
	req.Empty(items)
}

func Test_BadgerStore_Namespaces_Are_Isolated(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	groups := newStore[domain.Group](t, db, "group")
	messages := newStore[domain.Message](t, db, "msg")

	req.NoError(groups.Save(domain.NewGroup("chat001", "pA")))
	req.NoError(messages.Save(domain.NewMessage("hi", "pA", "chat001")))
	req.NoError(messages.Save(domain.NewMessage("there", "pA", "chat001")))

	g, err := groups.List()
	req.NoError(err)
	req.Len(g, 1)
	m, err := messages.List()
	req.NoError(err)
	req.Len(m, 2)
}

func Test_BadgerStore_Message_RoundTrip(t *testing.T) {
	req := require.New(t)
	store := newStore[domain.Message](t, openDB(t), "msg")
	parent := domain.NewMessage("question", "pA", "chat001")
	reply := domain.NewMessage("answer", "pB", "chat001").WithReply(parent.ID)

	req.NoError(store.Save(parent))
	req.NoError(store.Save(reply))

	// When the reply is looked up by id
	found, ok, err := store.FindOne(storage.PredicateFunc[domain.Message](func(m domain.Message) bool {
		return m.ID == reply.ID
	}))

	// Then every field survived the encoding
	req.NoError(err)
	req.True(ok)
	req.Equal(reply.ID, found.ID)
	req.Equal(reply.Source, found.Source)
	req.Equal(reply.GroupName, found.GroupName)
	req.Equal(reply.Body, found.Body)
	req.True(reply.Timestamp.Equal(found.Timestamp))
	req.NotNil(found.ReplyID)
	req.Equal(parent.ID, *found.ReplyID)

	_, ok, err = store.FindOne(storage.PredicateFunc[domain.Message](func(m domain.Message) bool {
		return m.ID == uuid.Nil
	}))
	req.NoError(err)
	req.False(ok)
}

func Test_BadgerStore_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	store, err := NewBadgerStore[string](db, log, "words")
	req.NoError(err)
	req.NoError(store.Save("first"))
	req.NoError(store.Save("second"))
	req.NoError(store.Close())
	req.NoError(db.Close())

	// When the database is opened again and more items are saved
	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	store, err = NewBadgerStore[string](db, log, "words")
	req.NoError(err)
	defer store.Close()
	req.NoError(store.Save("third"))

	// Then the insertion order spans both sessions
	items, err := store.List()
	req.NoError(err)
	req.Equal([]string{"first", "second", "third"}, items)
}
