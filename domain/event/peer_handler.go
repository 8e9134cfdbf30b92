package event

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/shaddyshad/p2p-chat/errors"
)

// PeerHandler keeps the set of peers currently known through discovery.
// Peers are listed by the CLI while the handler is updated by the network task.
type PeerHandler struct {
	mu    sync.RWMutex
	log   *slog.Logger
	peers map[string]struct{}
}

func NewPeerHandler(log *slog.Logger) *PeerHandler {
	return &PeerHandler{log: log, peers: make(map[string]struct{})}
}

func (h *PeerHandler) Handle(event Event) error {
	switch event.Type {
	case PeerAddedType, PeerRemovedType:
		payload, ok := event.Payload.(PeerChange)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return errors.ErrInvalidPayload
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		if event.Type == PeerAddedType {
			h.peers[payload.Peer] = struct{}{}
		} else {
			delete(h.peers, payload.Peer)
		}
	}
	return nil
}

// Peers returns the known peers, sorted.
func (h *PeerHandler) Peers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	res := make([]string, 0, len(h.peers))
	for p := range h.peers {
		res = append(res, p)
	}
	slices.Sort(res)
	return res
}
