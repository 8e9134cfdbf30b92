package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	req := require.New(t)

	group := NewGroup("chat001", "pA")

	req.NotEqual(uuid.Nil, group.ID)
	req.Equal("chat001", group.Name)
	req.Equal("pA", group.Creator)
	req.False(group.CreatedAt.IsZero())
	req.NoError(Validate(group))
}

func TestValidate_GroupName(t *testing.T) {
	req := require.New(t)

	req.Error(Validate(NewGroup("", "pA")))
	req.Error(Validate(NewGroup(strings.Repeat("x", 65), "pA")))
	req.NoError(Validate(NewGroup(strings.Repeat("x", 64), "pA")))
}

func TestNewPeer(t *testing.T) {
	peer := NewPeer("12D3KooW", "shaddyshad")

	require.Equal(t, "12D3KooW", peer.PeerID)
	require.Equal(t, "shaddyshad", peer.Username)
}
