package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shaddyshad/p2p-chat/cli"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/mocks"
	"github.com/shaddyshad/p2p-chat/ui"
)

func newREPL(t *testing.T) (*cli.REPL, *mocks.MockChat, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChat(ctrl)
	var out bytes.Buffer
	return cli.NewREPL(slog.Default(), chat, &out, ui.NewNotifier(&out, "pA", nil, false), nil), chat, &out
}

func TestREPL_Runs_Until_Quit(t *testing.T) {
	req := require.New(t)
	repl, chat, out := newREPL(t)

	// Given a session creating a group and sending a message
	chat.EXPECT().CreateGroup("chat001").Return(true, nil)
	chat.EXPECT().Send("chat001", "hello world").Return(domain.NewMessage("hello world", "pA", "chat001"), nil)
	input := strings.NewReader("create t chat001\n\nnonsense\ncreate m chat001 hello world\nq\ncreate t never\n")

	// When
	err := repl.Run(context.Background(), input)

	// Then everything after q is ignored and bad input is reported
	req.NoError(err)
	req.Contains(out.String(), "subscribed to chat001")
	req.Contains(out.String(), errors.ErrUnknownCommand.Error())
}

func TestREPL_Stops_At_End_Of_Input(t *testing.T) {
	repl, chat, _ := newREPL(t)
	chat.EXPECT().Peers().Return([]string{"pB"})

	require.NoError(t, repl.Run(context.Background(), strings.NewReader("ls p")))
}

func TestREPL_Reports_Storage_Failure(t *testing.T) {
	req := require.New(t)
	repl, chat, out := newREPL(t)

	// Given
	chat.EXPECT().CreateGroup("chat001").Return(false, errors.ErrStorageFailure)

	// When
	repl.Execute(context.Background(), cli.Command{Kind: cli.CreateTopic, Topic: "chat001"})

	// Then
	req.Contains(out.String(), "cannot create group")
	req.Contains(out.String(), errors.ErrStorageFailure.Error())
}

func TestREPL_Lists_Messages_Of_Topic(t *testing.T) {
	req := require.New(t)
	repl, chat, out := newREPL(t)
	msg := domain.NewMessage("hello", "pB", "chat001")

	// Given
	chat.EXPECT().Messages("chat001").Return([]domain.Message{msg}, nil)

	// When
	repl.Execute(context.Background(), cli.Command{Kind: cli.ListMessages, Topic: "chat001"})

	// Then
	req.Contains(out.String(), msg.ID.String())
	req.Contains(out.String(), "hello")
}

func TestREPL_Join_And_Leave(t *testing.T) {
	req := require.New(t)
	repl, chat, out := newREPL(t)

	// Given
	chat.EXPECT().JoinGroup("chat001").Return(false)
	chat.EXPECT().LeaveGroup("chat001").Return(true)

	// When
	repl.Execute(context.Background(), cli.Command{Kind: cli.JoinTopic, Topic: "chat001"})
	repl.Execute(context.Background(), cli.Command{Kind: cli.LeaveTopic, Topic: "chat001"})

	// Then
	req.Equal("already subscribed to chat001\nleft chat001\n", out.String())
}

func TestREPL_Dial(t *testing.T) {
	req := require.New(t)
	repl, chat, out := newREPL(t)

	// Given
	chat.EXPECT().Dial(gomock.Any(), "/ip4/127.0.0.1/tcp/4001/p2p/x").Return(nil)

	// When
	repl.Execute(context.Background(), cli.Command{Kind: cli.Dial, Addr: "/ip4/127.0.0.1/tcp/4001/p2p/x"})

	// Then
	req.Contains(out.String(), "connected to")
}
