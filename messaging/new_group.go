package messaging

import (
	"fmt"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/storage"
)

// NewGroup creates a group chat on behalf of a peer and manages the peer's
// subscription to it. A group is persisted before anyone subscribes to it.
type NewGroup struct {
	GroupName  string
	PeerID     string
	Storage    storage.Store[domain.Group]
	Subscriber contract.Subscriber
}

// Exists reports whether this peer already registered a group under this name.
func (g *NewGroup) Exists() (bool, error) {
	found, err := g.Storage.Find(GroupByName{Name: g.GroupName, Creator: g.PeerID})
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// Save builds the group and writes it to the store.
// An invalid group is rejected before any write.
func (g *NewGroup) Save() error {
	group := domain.NewGroup(g.GroupName, g.PeerID)
	if err := domain.Validate(group); err != nil {
		return fmt.Errorf("invalid group %q: %w", g.GroupName, err)
	}
	return g.Storage.Save(group)
}

// Subscribe saves the group if needed, then subscribes the peer.
// If persistence fails the subscriber is never called.
// The returned bool is the subscriber's answer: true if the subscription is new.
func (g *NewGroup) Subscribe() (bool, error) {
	exists, err := g.Exists()
	if err != nil {
		return false, err
	}
	if !exists {
		if err := g.Save(); err != nil {
			return false, err
		}
	}
	return g.Subscriber.Subscribe(g.PeerID, g.GroupName), nil
}

// Unsubscribe leaves the group. The group stays in the store.
func (g *NewGroup) Unsubscribe() bool {
	return g.Subscriber.Unsubscribe(g.PeerID, g.GroupName)
}
