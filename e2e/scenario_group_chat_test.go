package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	pkgerr "github.com/shaddyshad/p2p-chat/errors"
)

type testGroupChatSuite struct {
	BasePeerSuite
}

func TestGroupChatSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("opens real sockets")
	}
	suite.Run(t, &testGroupChatSuite{})
}

func (s *testGroupChatSuite) TestTwoPeersChatInAGroup() {
	alice := s.StartPeer("alice")
	bob := s.StartPeer("bob")

	s.Step("Step 1: bob dials alice", func() {
		s.Require().NotEmpty(alice.Orchestrator.ListenAddrs())
		err := bob.Orchestrator.Dial(context.Background(), alice.Orchestrator.ListenAddrs()[0])
		s.Require().NoError(err)
		s.WaitFor(func() bool { return len(bob.Orchestrator.Peers()) == 1 }, "bob should know alice")
	})

	s.Step("Step 2: alice creates the group and bob joins it", func() {
		created, err := alice.Orchestrator.CreateGroup("chat001")
		s.Require().NoError(err)
		s.Require().True(created)
		s.Require().True(bob.Orchestrator.JoinGroup("chat001"))

		s.WaitFor(func() bool { return len(alice.Orchestrator.Members("chat001")) == 1 }, "alice should see bob")
		s.WaitFor(func() bool { return len(bob.Orchestrator.Members("chat001")) == 1 }, "bob should see alice")
	})

	s.Step("Step 3: a message and its reply cross the network", func() {
		hello, err := alice.Orchestrator.Send("chat001", "hello bob")
		s.Require().NoError(err)

		s.WaitFor(func() bool {
			messages, err := bob.Orchestrator.Messages("chat001")
			return err == nil && len(messages) == 1 && messages[0].ID == hello.ID
		}, "bob should store alice's message")

		_, err = bob.Orchestrator.Reply("chat001", hello.ID, "hi alice")
		s.Require().NoError(err)
		s.WaitFor(func() bool {
			messages, err := alice.Orchestrator.Messages("chat001")
			return err == nil && len(messages) == 2 && messages[1].ReplyID != nil && *messages[1].ReplyID == hello.ID
		}, "alice should store bob's reply after her own message")
		s.Contains(bob.Output.String(), "hello bob")
	})

	s.Step("Step 4: bob leaves", func() {
		s.Require().True(bob.Orchestrator.LeaveGroup("chat001"))
		s.WaitFor(func() bool { return len(alice.Orchestrator.Members("chat001")) == 0 }, "alice should see bob leave")

		_, err := bob.Orchestrator.Send("chat001", "anyone?")
		s.Require().ErrorIs(err, pkgerr.ErrNotSubscribed)
	})
}
