// Package p2p is the libp2p implementation of the transport: TCP with a Noise
// handshake and yamux multiplexing, mDNS discovery and floodsub.
package p2p

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/libp2p/go-libp2p"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/peerstore"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"
	"github.com/libp2p/go-libp2p/p2p/muxer/yamux"
	noise "github.com/libp2p/go-libp2p/p2p/security/noise"
	tcp "github.com/libp2p/go-libp2p/p2p/transport/tcp"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/samber/lo"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/errors"
)

var _ contract.Transport = (*Node)(nil)

type Config struct {
	ServiceName string // mDNS service tag, discovery is off when empty
	BufferSize  int
}

type topicState struct {
	topic   *pubsub.Topic
	sub     *pubsub.Subscription
	handler *pubsub.TopicEventHandler
	cancel  context.CancelFunc
}

// Node owns a libp2p host. Every goroutine it starts reports
// through the same events channel.
type Node struct {
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	host   host.Host
	ps     *pubsub.PubSub
	mdns   mdns.Service
	events chan contract.RawEvent

	mu     sync.Mutex
	topics map[string]*topicState
	view   map[peer.ID]struct{}
}

// New starts a host that does not listen yet, see Listen.
func New(ctx context.Context, log *slog.Logger, key crypto.PrivKey, cfg Config) (*Node, error) {
	h, err := libp2p.New(
		libp2p.Identity(key),
		libp2p.NoListenAddrs,
		libp2p.Transport(tcp.NewTCPTransport),
		libp2p.Security(noise.ID, noise.New),
		libp2p.Muxer(yamux.ID, yamux.DefaultTransport),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	nodeCtx, cancel := context.WithCancel(ctx)
	ps, err := pubsub.NewFloodSub(nodeCtx, h)
	if err != nil {
		cancel()
		_ = h.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}

	n := &Node{
		log:    log,
		ctx:    nodeCtx,
		cancel: cancel,
		host:   h,
		ps:     ps,
		events: make(chan contract.RawEvent, max(cfg.BufferSize, 1)),
		topics: make(map[string]*topicState),
		view:   make(map[peer.ID]struct{}),
	}

	h.Network().Notify(&network.NotifyBundle{DisconnectedF: n.disconnected})

	if cfg.ServiceName != "" {
		n.mdns = mdns.NewMdnsService(h, cfg.ServiceName, n)
		if err := n.mdns.Start(); err != nil {
			_ = n.Close()
			return nil, fmt.Errorf("%w: mdns: %w", errors.ErrNetwork, err)
		}
	}
	log.Info("P2P node started", "peer_id", h.ID())
	return n, nil
}

func (n *Node) ID() string {
	return n.host.ID().String()
}

func (n *Node) Events() <-chan contract.RawEvent {
	return n.events
}

// HandlePeerFound is called by mDNS on every response.
// Peers already in the view are not reported again.
func (n *Node) HandlePeerFound(info peer.AddrInfo) {
	if info.ID == n.host.ID() || n.inView(info.ID) {
		return
	}
	n.host.Peerstore().AddAddrs(info.ID, info.Addrs, peerstore.TempAddrTTL)
	n.push(contract.RawEvent{Kind: contract.RawPeerDiscovered, Peer: info.ID.String()})
}

func (n *Node) disconnected(net network.Network, conn network.Conn) {
	pid := conn.RemotePeer()
	if net.Connectedness(pid) == network.Connected {
		return
	}
	if n.inView(pid) {
		n.push(contract.RawEvent{Kind: contract.RawPeerExpired, Peer: pid.String()})
	}
}

// AddPeer connects to a discovered peer and adds it to the flood view.
func (n *Node) AddPeer(ctx context.Context, peerID string) error {
	pid, err := peer.Decode(peerID)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	if err := n.host.Connect(ctx, n.host.Peerstore().PeerInfo(pid)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	n.mu.Lock()
	n.view[pid] = struct{}{}
	n.mu.Unlock()
	return nil
}

// RemovePeer drops a peer from the flood view and closes its connections.
func (n *Node) RemovePeer(peerID string) error {
	pid, err := peer.Decode(peerID)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	n.mu.Lock()
	delete(n.view, pid)
	n.mu.Unlock()
	return n.host.Network().ClosePeer(pid)
}

func (n *Node) inView(pid peer.ID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.view[pid]
	return ok
}

// View lists the peers of the flood view, sorted.
func (n *Node) View() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	res := lo.Map(lo.Keys(n.view), func(pid peer.ID, _ int) string { return pid.String() })
	slices.Sort(res)
	return res
}

func (n *Node) Listen(addr string) error {
	maddr, err := ma.NewMultiaddr(addr)
	if err != nil {
		return err
	}
	return n.host.Network().Listen(maddr)
}

// Dial connects to a full /p2p/ multiaddr, the peer is then reported as discovered.
func (n *Node) Dial(ctx context.Context, addr string) error {
	maddr, err := ma.NewMultiaddr(addr)
	if err != nil {
		return err
	}
	info, err := peer.AddrInfoFromP2pAddr(maddr)
	if err != nil {
		return err
	}
	n.host.Peerstore().AddAddrs(info.ID, info.Addrs, peerstore.PermanentAddrTTL)
	if err := n.host.Connect(ctx, *info); err != nil {
		return err
	}
	n.push(contract.RawEvent{Kind: contract.RawPeerDiscovered, Peer: info.ID.String()})
	return nil
}

// ListenAddrs returns dialable addresses, each ending with this node's /p2p/ id.
func (n *Node) ListenAddrs() []string {
	return lo.Map(n.host.Addrs(), func(a ma.Multiaddr, _ int) string {
		return fmt.Sprintf("%s/p2p/%s", a, n.host.ID())
	})
}

// Join subscribes to a topic and starts reporting its messages and members.
func (n *Node) Join(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	state, err := n.topicLocked(name)
	if err != nil {
		return err
	}
	if state.sub != nil {
		return nil
	}
	sub, err := state.topic.Subscribe()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	handler, err := state.topic.EventHandler()
	if err != nil {
		sub.Cancel()
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	ctx, cancel := context.WithCancel(n.ctx)
	state.sub, state.handler, state.cancel = sub, handler, cancel

	go n.readMessages(ctx, name, sub)
	go n.readPeerEvents(ctx, name, handler)
	return nil
}

func (n *Node) Leave(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	state, ok := n.topics[name]
	if !ok || state.sub == nil {
		return fmt.Errorf("%w: %s", errors.ErrNotSubscribed, name)
	}
	state.cancel()
	state.sub.Cancel()
	state.handler.Cancel()
	delete(n.topics, name)
	if err := state.topic.Close(); err != nil {
		n.log.Debug("Topic not closed", "topic", name, "error", err)
	}
	return nil
}

// Publish does not require the topic to be subscribed.
func (n *Node) Publish(ctx context.Context, name string, data []byte) error {
	n.mu.Lock()
	state, err := n.topicLocked(name)
	n.mu.Unlock()
	if err != nil {
		return err
	}
	if err := state.topic.Publish(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	return nil
}

func (n *Node) topicLocked(name string) (*topicState, error) {
	if state, ok := n.topics[name]; ok {
		return state, nil
	}
	topic, err := n.ps.Join(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	state := &topicState{topic: topic}
	n.topics[name] = state
	return state, nil
}

func (n *Node) readMessages(ctx context.Context, name string, sub *pubsub.Subscription) {
	for {
		msg, err := sub.Next(ctx)
		if err != nil {
			return
		}
		if msg.ReceivedFrom == n.host.ID() {
			continue
		}
		n.push(contract.RawEvent{
			Kind:  contract.RawMessage,
			Peer:  msg.GetFrom().String(),
			Topic: name,
			Data:  msg.Data,
		})
	}
}

func (n *Node) readPeerEvents(ctx context.Context, name string, handler *pubsub.TopicEventHandler) {
	for {
		pe, err := handler.NextPeerEvent(ctx)
		if err != nil {
			return
		}
		kind := contract.RawSubscribed
		if pe.Type == pubsub.PeerLeave {
			kind = contract.RawUnsubscribed
		}
		n.push(contract.RawEvent{Kind: kind, Peer: pe.Peer.String(), Topic: name})
	}
}

func (n *Node) push(evt contract.RawEvent) {
	select {
	case n.events <- evt:
	case <-n.ctx.Done():
	}
}

// Close stops discovery, every topic reader and the host.
// The events channel is left open, readers stop on their own context.
func (n *Node) Close() error {
	n.cancel()
	if n.mdns != nil {
		_ = n.mdns.Close()
	}
	n.mu.Lock()
	for name, state := range n.topics {
		if state.sub != nil {
			state.cancel()
			state.sub.Cancel()
			state.handler.Cancel()
		}
		_ = state.topic.Close()
		delete(n.topics, name)
	}
	n.mu.Unlock()
	return n.host.Close()
}
