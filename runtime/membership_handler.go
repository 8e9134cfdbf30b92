package runtime

import (
	"log/slog"

	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
)

// MembershipHandler mirrors remote subscriptions into a Registry,
// so the CLI can tell who listens on a topic.
type MembershipHandler struct {
	log      *slog.Logger
	registry *Registry
}

func NewMembershipHandler(log *slog.Logger, registry *Registry) *MembershipHandler {
	return &MembershipHandler{log: log, registry: registry}
}

func (h *MembershipHandler) Handle(evt event.Event) error {
	switch evt.Type {
	case event.SubscribedType, event.UnsubscribedType:
		sub, ok := evt.Payload.(event.Subscription)
		if !ok {
			return errors.ErrInvalidPayload
		}
		if evt.Type == event.SubscribedType {
			h.registry.Join(sub.Peer, sub.Topic)
		} else {
			h.registry.Leave(sub.Peer, sub.Topic)
		}
	case event.PeerRemovedType:
		change, ok := evt.Payload.(event.PeerChange)
		if !ok {
			return errors.ErrInvalidPayload
		}
		if left := h.registry.RemovePeer(change.Peer); len(left) > 0 {
			h.log.Debug("Peer gone, memberships dropped", "peer", change.Peer, "topics", left)
		}
	}
	return nil
}
