// Package e2e runs real peers in process and lets them talk over loopback.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/keystore"
	"github.com/shaddyshad/p2p-chat/network/p2p"
	"github.com/shaddyshad/p2p-chat/runtime"
	"github.com/shaddyshad/p2p-chat/runtime/workers"
	"github.com/shaddyshad/p2p-chat/storage"
	"github.com/shaddyshad/p2p-chat/ui"
)

// syncBuffer is written by the bus and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type Peer struct {
	Name         string
	Orchestrator *runtime.Orchestrator
	Output       *syncBuffer
	node         *p2p.Node
	done         chan struct{}
}

type BasePeerSuite struct {
	suite.Suite
	Config Config
	peers  []*Peer
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePeerSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BasePeerSuite) TearDownTest() {
	for _, peer := range s.peers {
		peer.Orchestrator.Stop()
		<-peer.done
		_ = peer.node.Close()
	}
	s.peers = nil
}

// StartPeer runs a full peer with in-memory stores, listening on loopback.
func (s *BasePeerSuite) StartPeer(name string) *Peer {
	log := logs.GetLoggerFromString(s.Config.LogLevel).With("peer", name)
	keys, err := keystore.New()
	s.Require().NoError(err)

	node, err := p2p.New(context.Background(), log, keys.Identity(), p2p.Config{BufferSize: 64})
	s.Require().NoError(err)

	peer := &Peer{Name: name, Output: &syncBuffer{}, node: node, done: make(chan struct{})}
	self := domain.NewPeer(keys.PeerID(), name)
	peer.Orchestrator = runtime.NewOrchestrator(log, self,
		workers.NewSupervisor(log, 50*time.Millisecond), node,
		storage.NewMemoryStore[domain.Group](), storage.NewMemoryStore[domain.Message]())
	peer.Orchestrator.Observe(ui.NewNotifier(peer.Output, self.PeerID, nil, false))
	s.Require().NoError(peer.Orchestrator.Listen("/ip4/127.0.0.1/tcp/0"))

	go func() {
		peer.Orchestrator.Start(context.Background())
		close(peer.done)
	}()
	s.peers = append(s.peers, peer)
	return peer
}

// Step prints a header then runs fn as a subtest.
func (s *BasePeerSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// WaitFor retries the condition until the configured timeout.
func (s *BasePeerSuite) WaitFor(condition func() bool, msg string) {
	s.Require().Eventually(condition, s.Config.Timeout, 20*time.Millisecond, msg)
}
