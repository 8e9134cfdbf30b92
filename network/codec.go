package network

import (
	"fmt"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/errors"
)

// wireMessage is the only format exposed to other peers.
// Unknown members are ignored when decoding.
type wireMessage struct {
	ID        uuid.UUID  `json:"id"`
	Source    string     `json:"source"`
	Body      string     `json:"msg"`
	Topic     string     `json:"topic"`
	ReplyID   *uuid.UUID `json:"reply_id,omitempty"`
	Timestamp time.Time  `json:"ts,omitzero"`
}

// Encode serializes a message as UTF-8 JSON.
func Encode(msg domain.Message) ([]byte, error) {
	data, err := json.Marshal(wireMessage{
		ID:        msg.ID,
		Source:    msg.Source,
		Body:      msg.Body,
		Topic:     msg.GroupName,
		ReplyID:   msg.ReplyID,
		Timestamp: msg.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	return data, nil
}

// Decode parses bytes received from a peer.
// The id, source and topic members are mandatory.
func Decode(data []byte) (domain.Message, error) {
	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	msg := domain.Message{
		ID:        wire.ID,
		Source:    wire.Source,
		GroupName: wire.Topic,
		Body:      wire.Body,
		Timestamp: wire.Timestamp,
		ReplyID:   wire.ReplyID,
	}
	if err := domain.Validate(msg); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	return msg, nil
}
