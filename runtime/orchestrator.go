// Package runtime wires the bus, the observers and the network adapter
// together and runs them under supervision. It holds no business rule.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/eventbus"
	"github.com/shaddyshad/p2p-chat/messaging"
	"github.com/shaddyshad/p2p-chat/network"
	"github.com/shaddyshad/p2p-chat/runtime/workers"
	"github.com/shaddyshad/p2p-chat/sink"
	"github.com/shaddyshad/p2p-chat/storage"
)

var _ contract.Chat = (*Orchestrator)(nil)

// Orchestrator owns every observer handle registered on its bus.
// Stores are shared by the terminal and the adapter task, they are synchronised here.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	peer       domain.Peer
	bus        *eventbus.Bus
	supervisor contract.ISupervisor
	adapter    *network.Adapter
	remote     *Registry
	peers      *event.PeerHandler
	counter    *event.CounterHandler
	groups     storage.Store[domain.Group]
	messages   storage.Store[domain.Message]
	handles    []*eventbus.Handle
}

func NewOrchestrator(log *slog.Logger, peer domain.Peer, supervisor contract.ISupervisor,
	transport contract.Transport, groups storage.Store[domain.Group],
	messages storage.Store[domain.Message]) *Orchestrator {
	bus := eventbus.New(log)
	o := &Orchestrator{
		log:        log,
		peer:       peer,
		bus:        bus,
		supervisor: supervisor,
		adapter:    network.NewAdapter(log, transport, bus, NewRegistry()),
		remote:     NewRegistry(),
		peers:      event.NewPeerHandler(log),
		counter:    event.NewCounterHandler(),
		groups:     storage.NewSynchronized(groups),
		messages:   storage.NewSynchronized(messages),
	}
	o.Observe(
		event.NewLogHandler(log),
		o.counter,
		o.peers,
		NewMembershipHandler(log, o.remote),
		sink.NewStoreSink(o.messages, log),
	)
	return o
}

// Observe registers observers on the bus, in order.
// They are called until Stop.
func (o *Orchestrator) Observe(observers ...event.Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, observer := range observers {
		handle := eventbus.NewHandle(observer)
		o.bus.Subscribe(handle)
		o.handles = append(o.handles, handle)
	}
}

// Start runs the adapter under supervision, it blocks until ctx is done or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	o.supervisor.Add(o.adapter)
	o.log.Info("Starting orchestrator", "peer_id", o.peer.PeerID, "username", o.peer.Username)
	o.supervisor.Run(ctx)
}

// Heartbeat adds a worker logging the node health every interval.
// It must be called before Start.
func (o *Orchestrator) Heartbeat(interval time.Duration) {
	o.supervisor.Add(workers.NewHeartbeatWorker(o.log, interval, o.vitals))
}

func (o *Orchestrator) vitals() workers.Vitals {
	return workers.Vitals{
		Peers:    len(o.peers.Peers()),
		Topics:   len(o.remote.Topics()),
		Messages: o.counter.Count(event.MessageType),
	}
}

// Stop cancels the adapter and detaches every observer.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	o.mu.Lock()
	defer o.mu.Unlock()
	for _, handle := range o.handles {
		handle.Release()
	}
	o.handles = nil
	o.log.Info("Session summary",
		"messages", o.counter.Count(event.MessageType),
		"subscriptions", o.counter.Count(event.SubscribedType),
		"peers_found", o.counter.Count(event.PeerAddedType))
}

func (o *Orchestrator) Listen(addr string) error {
	return o.adapter.Listen(addr)
}

func (o *Orchestrator) Dial(ctx context.Context, addr string) error {
	return o.adapter.Dial(ctx, addr)
}

func (o *Orchestrator) ListenAddrs() []string {
	return o.adapter.ListenAddrs()
}

// CreateGroup registers the group if this peer never did, then subscribes to it.
func (o *Orchestrator) CreateGroup(name string) (bool, error) {
	return messaging.GroupFor(o.peer, name, o.groups, o.adapter).Subscribe()
}

// JoinGroup subscribes to a topic someone else created, nothing is stored.
func (o *Orchestrator) JoinGroup(name string) bool {
	return o.adapter.Subscribe(o.peer.PeerID, name)
}

func (o *Orchestrator) LeaveGroup(name string) bool {
	return messaging.GroupFor(o.peer, name, o.groups, o.adapter).Unsubscribe()
}

func (o *Orchestrator) Groups() ([]domain.Group, error) {
	return messaging.ListGroups(o.peer.PeerID, o.groups).Collect()
}

// Send fails with ErrNotSubscribed unless the local peer joined or created the topic.
func (o *Orchestrator) Send(topic, body string) (domain.Message, error) {
	msg := messaging.MessageFor(o.peer, topic, body, o.messages, o.adapter, o.adapter, o.log)
	return msg.Message, msg.Send()
}

func (o *Orchestrator) Reply(topic string, replyID uuid.UUID, body string) (domain.Message, error) {
	msg := messaging.MessageFor(o.peer, topic, body, o.messages, o.adapter, o.adapter, o.log)
	msg.Message = msg.Message.WithReply(replyID)
	return msg.Message, msg.Send()
}

// Messages lists the messages of a topic, every stored message when topic is empty.
func (o *Orchestrator) Messages(topic string) ([]domain.Message, error) {
	if topic == "" {
		return o.messages.List()
	}
	return messaging.ListMessages(topic, o.messages).Collect()
}

func (o *Orchestrator) Peers() []string {
	return o.peers.Peers()
}

// Members lists the remote peers subscribed to a topic.
func (o *Orchestrator) Members(topic string) []string {
	return o.remote.Members(topic)
}
