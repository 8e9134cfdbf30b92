// Package event defines what the network reports to in-process observers.
// Events are values: once emitted they are never mutated.
package event

import (
	"time"

	"github.com/shaddyshad/p2p-chat/domain"
)

type Type string

const (
	MessageType      Type = "MESSAGE"
	SubscribedType   Type = "SUBSCRIBED"
	UnsubscribedType Type = "UNSUBSCRIBED"
	PeerAddedType    Type = "PEER_ADDED"
	PeerRemovedType  Type = "PEER_REMOVED"
)

// Event is a tagged variant, Payload's concrete type is fixed by Type:
//
//	MessageType      -> domain.Message
//	SubscribedType   -> Subscription
//	UnsubscribedType -> Subscription
//	PeerAddedType    -> PeerChange
//	PeerRemovedType  -> PeerChange
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// Subscription reports a remote peer joining or leaving a topic.
type Subscription struct {
	Peer  string
	Topic string
}

// PeerChange reports a peer found or lost by discovery.
type PeerChange struct {
	Peer string
}

func NewMsg(message domain.Message) Event {
	return newEvent(MessageType, message)
}

func NewSub(peer, topic string) Event {
	return newEvent(SubscribedType, Subscription{Peer: peer, Topic: topic})
}

func NewUnsub(peer, topic string) Event {
	return newEvent(UnsubscribedType, Subscription{Peer: peer, Topic: topic})
}

func NewPeerAdded(peer string) Event {
	return newEvent(PeerAddedType, PeerChange{Peer: peer})
}

func NewPeerRemoved(peer string) Event {
	return newEvent(PeerRemovedType, PeerChange{Peer: peer})
}

func newEvent(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}
