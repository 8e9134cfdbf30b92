package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/ui"
)

const dialTimeout = 10 * time.Second

// Printer is where the REPL writes its answers, see ui.Notifier.
type Printer interface {
	Println(line string) error
}

type REPL struct {
	log     *slog.Logger
	chat    contract.Chat
	out     io.Writer
	printer Printer
	censor  ui.Censor
}

func NewREPL(log *slog.Logger, chat contract.Chat, out io.Writer, printer Printer, censor ui.Censor) *REPL {
	return &REPL{log: log, chat: chat, out: out, printer: printer, censor: censor}
}

// Run reads commands until q, the end of input or ctx is done.
// Bad input is reported and ignored.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			cmd, err := Parse(line)
			if err != nil {
				r.say("%v (type help)", err)
				continue
			}
			if cmd.Kind == Quit {
				return nil
			}
			r.Execute(ctx, cmd)
		}
	}
}

// Execute runs a single command, failures are printed.
func (r *REPL) Execute(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case Help:
		r.say("%s", usage)
	case CreateTopic:
		created, err := r.chat.CreateGroup(cmd.Topic)
		switch {
		case err != nil:
			r.fail("create group", err)
		case created:
			r.say("subscribed to %s", cmd.Topic)
		default:
			r.say("already subscribed to %s", cmd.Topic)
		}
	case JoinTopic:
		if r.chat.JoinGroup(cmd.Topic) {
			r.say("subscribed to %s", cmd.Topic)
		} else {
			r.say("already subscribed to %s", cmd.Topic)
		}
	case LeaveTopic:
		if r.chat.LeaveGroup(cmd.Topic) {
			r.say("left %s", cmd.Topic)
		} else {
			r.say("not subscribed to %s", cmd.Topic)
		}
	case ListTopics:
		groups, err := r.chat.Groups()
		if err != nil {
			r.fail("list groups", err)
			return
		}
		ui.RenderGroups(r.out, groups)
	case CreateMessage:
		msg, err := r.chat.Send(cmd.Topic, cmd.Text)
		if err != nil {
			r.fail("send message", err)
			return
		}
		r.log.Debug("Message sent", "id", msg.ID, "topic", msg.GroupName)
	case ReplyMessage:
		if _, err := r.chat.Reply(cmd.Topic, cmd.ReplyID, cmd.Text); err != nil {
			r.fail("send reply", err)
		}
	case ListMessages:
		messages, err := r.chat.Messages(cmd.Topic)
		if err != nil {
			r.fail("list messages", err)
			return
		}
		ui.RenderMessages(r.out, messages, r.censor)
	case ListPeers:
		ui.RenderList(r.out, "Peer", r.chat.Peers())
	case ListMembers:
		ui.RenderList(r.out, "Member", r.chat.Members(cmd.Topic))
	case ListAddrs:
		ui.RenderList(r.out, "Address", r.chat.ListenAddrs())
	case Dial:
		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		if err := r.chat.Dial(dialCtx, cmd.Addr); err != nil {
			r.fail("dial", err)
			return
		}
		r.say("connected to %s", cmd.Addr)
	}
}

func (r *REPL) say(format string, args ...any) {
	if err := r.printer.Println(fmt.Sprintf(format, args...)); err != nil {
		r.log.Warn("Cannot write to terminal", "error", err)
	}
}

func (r *REPL) fail(action string, err error) {
	r.log.Debug("Command failed", "action", action, "error", err)
	r.say("cannot %s: %v", action, err)
}
