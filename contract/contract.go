//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/shaddyshad/p2p-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Subscriber lets a peer join and leave topics of the message stream.
type Subscriber interface {
	// Subscribe returns true if the subscription is new, false if it already existed.
	Subscribe(peerID, topic string) bool
	// Unsubscribe returns true if the peer was subscribed, false otherwise.
	Unsubscribe(peerID, topic string) bool
}

// Subscriptions tells whether a local peer listens to a topic.
type Subscriptions interface {
	IsSubscribed(peerID, topic string) bool
}

// Publisher pushes messages to the stream. Delivery is best effort:
// the error is reported for logging, callers do not retry.
type Publisher[T any] interface {
	Publish(message T) error
}

// Emitter fans an event out to observers.
type Emitter interface {
	Emit(evt event.Event) error
}

// Membership tracks which peers are subscribed to which topic.
type Membership interface {
	Join(peerID, topic string) bool
	Leave(peerID, topic string) bool
	IsMember(peerID, topic string) bool
	Members(topic string) []string
}
