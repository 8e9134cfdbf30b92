// Package network translates what the pub/sub stack reports into events
// and exposes the subscribe and publish capabilities to the workflows.
package network

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
)

const (
	publishTimeout = 5 * time.Second
	addPeerTimeout = 5 * time.Second
)

var (
	_ contract.Worker                    = (*Adapter)(nil)
	_ contract.Subscriber                = (*Adapter)(nil)
	_ contract.Subscriptions             = (*Adapter)(nil)
	_ contract.Publisher[domain.Message] = (*Adapter)(nil)
)

// Adapter is the single task reading the transport.
// Events are emitted one at a time, in the order the transport produced them.
type Adapter struct {
	log        *slog.Logger
	transport  contract.Transport
	emitter    contract.Emitter
	membership contract.Membership // local subscriptions only
}

func NewAdapter(log *slog.Logger, transport contract.Transport,
	emitter contract.Emitter, membership contract.Membership) *Adapter {
	return &Adapter{
		log:        log,
		transport:  transport,
		emitter:    emitter,
		membership: membership,
	}
}

// Run drains the transport until ctx is canceled or the stream is closed.
func (a *Adapter) Run(ctx context.Context) error {
	events := a.transport.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-events:
			if !ok {
				a.log.Info("Transport event stream closed")
				return nil
			}
			a.translate(ctx, raw)
		}
	}
}

func (a *Adapter) translate(ctx context.Context, raw contract.RawEvent) {
	var evt event.Event
	switch raw.Kind {
	case contract.RawMessage:
		msg, err := Decode(raw.Data)
		if err != nil {
			a.log.Warn("Dropping inbound message", "from", raw.Peer, "topic", raw.Topic, "error", err)
			return
		}
		evt = event.NewMsg(msg)
	case contract.RawSubscribed:
		evt = event.NewSub(raw.Peer, raw.Topic)
	case contract.RawUnsubscribed:
		evt = event.NewUnsub(raw.Peer, raw.Topic)
	case contract.RawPeerDiscovered:
		a.addPeer(ctx, raw.Peer)
		evt = event.NewPeerAdded(raw.Peer)
	case contract.RawPeerExpired:
		if err := a.transport.RemovePeer(raw.Peer); err != nil {
			a.log.Warn("Cannot remove peer from partial view", "peer", raw.Peer, "error", err)
		}
		evt = event.NewPeerRemoved(raw.Peer)
	default:
		a.log.Warn("Unknown raw event", "kind", raw.Kind)
		return
	}
	// The bus logs delivery failures itself
	_ = a.emitter.Emit(evt)
}

// addPeer bounds the dial so a slow peer does not hold up the other events.
func (a *Adapter) addPeer(ctx context.Context, peerID string) {
	ctx, cancel := context.WithTimeout(ctx, addPeerTimeout)
	defer cancel()
	if err := a.transport.AddPeer(ctx, peerID); err != nil {
		a.log.Warn("Cannot add peer to partial view", "peer", peerID, "error", err)
	}
}

// Subscribe joins the topic on the network the first time a local peer subscribes to it.
func (a *Adapter) Subscribe(peerID, topic string) bool {
	if !a.membership.Join(peerID, topic) {
		return false
	}
	if len(a.membership.Members(topic)) > 1 {
		return true
	}
	if err := a.transport.Join(topic); err != nil {
		a.log.Error("Cannot join topic", "topic", topic, "error", err)
		a.membership.Leave(peerID, topic)
		return false
	}
	a.log.Debug("Topic joined", "topic", topic, "peer", peerID)
	return true
}

// Unsubscribe leaves the topic on the network once no local peer listens to it.
func (a *Adapter) Unsubscribe(peerID, topic string) bool {
	if !a.membership.Leave(peerID, topic) {
		return false
	}
	if len(a.membership.Members(topic)) == 0 {
		if err := a.transport.Leave(topic); err != nil {
			a.log.Warn("Cannot leave topic", "topic", topic, "error", err)
		}
	}
	return true
}

// IsSubscribed reports whether a local peer subscribed to the topic through this adapter.
func (a *Adapter) IsSubscribed(peerID, topic string) bool {
	return a.membership.IsMember(peerID, topic)
}

// Publish sends the message on its topic.
func (a *Adapter) Publish(msg domain.Message) error {
	data, err := Encode(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := a.transport.Publish(ctx, msg.GroupName, data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	return nil
}

func (a *Adapter) Listen(addr string) error {
	if err := a.transport.Listen(addr); err != nil {
		return fmt.Errorf("%w: listen on %s: %w", errors.ErrNetwork, addr, err)
	}
	return nil
}

func (a *Adapter) Dial(ctx context.Context, addr string) error {
	if err := a.transport.Dial(ctx, addr); err != nil {
		return fmt.Errorf("%w: dial %s: %w", errors.ErrNetwork, addr, err)
	}
	return nil
}

func (a *Adapter) ListenAddrs() []string {
	return a.transport.ListenAddrs()
}

func (a *Adapter) ID() string {
	return a.transport.ID()
}
