package messaging

import (
	"github.com/google/uuid"
	"github.com/shaddyshad/p2p-chat/domain"
)

// GroupByName matches the group a creator registered under a name.
type GroupByName struct {
	Name    string
	Creator string
}

func (q GroupByName) Matches(g domain.Group) bool {
	return g.Name == q.Name && g.Creator == q.Creator
}

// GroupsByCreator matches every group registered by a peer.
type GroupsByCreator string

func (q GroupsByCreator) Matches(g domain.Group) bool {
	return g.Creator == string(q)
}

// MessageByID matches a message by its identity.
type MessageByID uuid.UUID

func (q MessageByID) Matches(m domain.Message) bool {
	return m.ID == uuid.UUID(q)
}

// MessagesInTopic matches the messages published on a topic.
type MessagesInTopic string

func (q MessagesInTopic) Matches(m domain.Message) bool {
	return m.GroupName == string(q)
}
