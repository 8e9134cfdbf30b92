package runtime

import (
	"log/slog"
	"testing"

	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/stretchr/testify/require"
)

func TestMembershipHandler_Tracks_Remote_Subscriptions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	handler := NewMembershipHandler(slog.Default(), registry)

	// Given two remote peers subscribing
	req.NoError(handler.Handle(event.NewSub("pB", "chat001")))
	req.NoError(handler.Handle(event.NewSub("pC", "chat001")))

	// When one unsubscribes and the other disappears
	req.NoError(handler.Handle(event.NewUnsub("pB", "chat001")))
	req.NoError(handler.Handle(event.NewPeerRemoved("pC")))

	// Then nobody is left
	req.Empty(registry.Topics())
}

func TestMembershipHandler_Rejects_Bad_Payload(t *testing.T) {
	req := require.New(t)
	handler := NewMembershipHandler(slog.Default(), NewRegistry())

	// When a subscription event carries the wrong payload
	err := handler.Handle(event.Event{Type: event.SubscribedType, Payload: "pB"})

	// Then
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestMembershipHandler_Ignores_Messages(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	handler := NewMembershipHandler(slog.Default(), registry)

	// When a peer is added
	req.NoError(handler.Handle(event.NewPeerAdded("pB")))

	// Then no membership is created
	req.Empty(registry.Topics())
}
