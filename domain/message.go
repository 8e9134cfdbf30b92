// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
// Messages are immutable once sent and identified by their UUID.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a unit of chat published on a topic.
type Message struct {
	ID        uuid.UUID  `validate:"required"`
	Source    string     `validate:"required"` // peer id of the sender
	GroupName string     `validate:"required"` // target topic
	Body      string
	Timestamp time.Time
	ReplyID   *uuid.UUID // optional, id of a prior message
}

func NewMessage(body, source, groupName string) Message {
	return Message{
		ID:        uuid.New(),
		Source:    source,
		GroupName: groupName,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
}

// WithReply returns a copy of the message answering the message identified by id.
func (m Message) WithReply(id uuid.UUID) Message {
	m.ReplyID = &id
	return m
}

// Equal compares messages by identity.
func (m Message) Equal(other Message) bool {
	return m.ID == other.ID
}
