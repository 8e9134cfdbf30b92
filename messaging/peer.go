// Package messaging holds the chat workflows: creating and joining groups,
// sending messages and listing what the local store knows about.
package messaging

import (
	"log/slog"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/storage"
)

// GroupFor prepares a NewGroup workflow on behalf of peer.
func GroupFor(peer domain.Peer, groupName string, store storage.Store[domain.Group], subscriber contract.Subscriber) *NewGroup {
	return &NewGroup{
		GroupName:  groupName,
		PeerID:     peer.PeerID,
		Storage:    store,
		Subscriber: subscriber,
	}
}

// MessageFor builds a message from peer to a topic and wraps it in a NewMessage workflow.
func MessageFor(peer domain.Peer, groupName, body string, store storage.Store[domain.Message],
	subscriptions contract.Subscriptions, publisher contract.Publisher[domain.Message], log *slog.Logger) *NewMessage {
	return &NewMessage{
		Message:       domain.NewMessage(body, peer.PeerID, groupName),
		Storage:       store,
		Subscriptions: subscriptions,
		Publisher:     publisher,
		Log:           log,
	}
}
