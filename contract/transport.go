//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=../mocks/mock_transport.go -package=mocks
package contract

import "context"

type RawEventKind int

const (
	RawMessage RawEventKind = iota
	RawSubscribed
	RawUnsubscribed
	RawPeerDiscovered
	RawPeerExpired
)

// RawEvent is what a pub/sub stack reports before translation.
// Data is only set for RawMessage, Topic for message and subscription kinds.
type RawEvent struct {
	Kind  RawEventKind
	Peer  string
	Topic string
	Data  []byte
}

// Transport is the pub/sub stack seen by the network adapter.
// Events must be delivered on a single channel, in the order they happened.
type Transport interface {
	Join(topic string) error
	Leave(topic string) error
	Publish(ctx context.Context, topic string, data []byte) error
	Events() <-chan RawEvent

	// Partial view of the flood graph, fed by discovery.
	AddPeer(ctx context.Context, peerID string) error
	RemovePeer(peerID string) error

	Listen(addr string) error
	Dial(ctx context.Context, addr string) error
	ListenAddrs() []string
	ID() string
}
