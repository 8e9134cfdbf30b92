package event

import (
	"log/slog"

	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/errors"
)

// LogHandler writes every network event to the structured log.
type LogHandler struct {
	log *slog.Logger
}

func NewLogHandler(log *slog.Logger) *LogHandler {
	return &LogHandler{log: log}
}

func (h *LogHandler) Handle(event Event) error {
	switch event.Type {
	case MessageType:
		payload, ok := event.Payload.(domain.Message)
		if !ok {
			return errors.ErrInvalidPayload
		}
		h.log.Debug("New message",
			"id", payload.ID,
			"source", payload.Source,
			"topic", payload.GroupName)
	case SubscribedType, UnsubscribedType:
		payload, ok := event.Payload.(Subscription)
		if !ok {
			return errors.ErrInvalidPayload
		}
		h.log.Debug("Subscription changed", "type", event.Type, "peer", payload.Peer, "topic", payload.Topic)
	case PeerAddedType, PeerRemovedType:
		payload, ok := event.Payload.(PeerChange)
		if !ok {
			return errors.ErrInvalidPayload
		}
		h.log.Debug("Peer changed", "type", event.Type, "peer", payload.Peer)
	default:
		h.log.Warn("Unknown event", "type", event.Type)
	}
	return nil
}
