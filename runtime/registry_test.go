package runtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Join_One_Topic_One_Peer(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	peerID := uuid.NewString()

	// Given no peer is subscribed
	// And no topic exists
	req.Empty(registry.Topics())

	// When a peer joins a topic
	joined := registry.Join(peerID, "chat001")

	// Then
	req.True(joined)
	req.Equal([]string{"chat001"}, registry.Topics())
	req.Equal([]string{peerID}, registry.Members("chat001"))
	req.True(registry.IsMember(peerID, "chat001"))
}

func TestRegistry_Join_Twice_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given a peer already in a topic
	req.True(registry.Join("pA", "chat001"))

	// When it joins again
	joined := registry.Join("pA", "chat001")

	// Then nothing changes
	req.False(joined)
	req.Len(registry.Members("chat001"), 1)
}

func TestRegistry_Join_One_Topic_Multiple_Peers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When peers join a topic
	registry.Join("pB", "chat001")
	registry.Join("pA", "chat001")

	// Then members are sorted
	req.Equal([]string{"pA", "pB"}, registry.Members("chat001"))
}

func TestRegistry_Leave_Last_Peer_Removes_Topic(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given a peer joins a topic
	registry.Join("pA", "chat001")

	// When the peer leaves
	left := registry.Leave("pA", "chat001")

	// Then the topic doesn't exist anymore
	req.True(left)
	req.Empty(registry.Topics())
	req.Nil(registry.Members("chat001"))

	// And leaving again reports nothing to do
	req.False(registry.Leave("pA", "chat001"))
}

func TestRegistry_RemovePeer_Leaves_Every_Topic(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given a peer in two topics and another peer in one
	registry.Join("pA", "chat002")
	registry.Join("pA", "chat001")
	registry.Join("pB", "chat001")

	// When the first peer disappears
	left := registry.RemovePeer("pA")

	// Then it left both topics
	req.Equal([]string{"chat001", "chat002"}, left)
	req.Equal([]string{"chat001"}, registry.Topics())
	req.Equal([]string{"pB"}, registry.Members("chat001"))
}
