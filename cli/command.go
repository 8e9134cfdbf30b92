// Package cli is the line oriented terminal of a peer.
package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/shaddyshad/p2p-chat/errors"
)

type Kind int

const (
	Quit Kind = iota
	Help
	CreateTopic
	JoinTopic
	LeaveTopic
	ListTopics
	CreateMessage
	ReplyMessage
	ListMessages
	ListPeers
	ListMembers
	ListAddrs
	Dial
)

type Command struct {
	Kind    Kind
	Topic   string
	Text    string
	ReplyID uuid.UUID
	Addr    string
}

const usage = `commands:
  q                            quit
  help                         this help
  create t <name>              create a group and subscribe to it
  join t <name>                subscribe to a topic
  leave t <name>               unsubscribe from a topic
  ls t                         list the groups you created
  create m <topic> <text...>   send a message
  reply <topic> <id> <text...> answer a message
  ls m [topic]                 list stored messages
  ls p                         list discovered peers
  ls u <topic>                 list remote members of a topic
  ls a                         list listening addresses
  dial <multiaddr>             connect to a peer`

// Parse reads one input line. Quotes group words, an unbalanced
// quote falls back to splitting on spaces.
func Parse(line string) (Command, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		words = strings.Fields(line)
	}
	if len(words) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", errors.ErrUnknownCommand)
	}

	switch verb, args := words[0], words[1:]; verb {
	case "q":
		return Command{Kind: Quit}, nil
	case "help":
		return Command{Kind: Help}, nil
	case "create":
		return parseCreate(args)
	case "join", "leave":
		if err := want(args, 2, "t <name>"); err != nil || args[0] != "t" {
			return Command{}, unknownOr(err, line)
		}
		kind := JoinTopic
		if verb == "leave" {
			kind = LeaveTopic
		}
		return Command{Kind: kind, Topic: args[1]}, nil
	case "ls":
		return parseList(args, line)
	case "reply":
		if err := want(args, 3, "<topic> <id> <text...>"); err != nil {
			return Command{}, err
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a message id", errors.ErrMissingArgs, args[1])
		}
		return Command{Kind: ReplyMessage, Topic: args[0], ReplyID: id, Text: strings.Join(args[2:], " ")}, nil
	case "dial":
		if err := want(args, 1, "<multiaddr>"); err != nil {
			return Command{}, err
		}
		return Command{Kind: Dial, Addr: args[0]}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, line)
}

func parseCreate(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: create t|m", errors.ErrMissingArgs)
	}
	switch args[0] {
	case "t":
		if err := want(args, 2, "t <name>"); err != nil {
			return Command{}, err
		}
		return Command{Kind: CreateTopic, Topic: args[1]}, nil
	case "m":
		if err := want(args, 3, "m <topic> <text...>"); err != nil {
			return Command{}, err
		}
		return Command{Kind: CreateMessage, Topic: args[1], Text: strings.Join(args[2:], " ")}, nil
	}
	return Command{}, fmt.Errorf("%w: create %s", errors.ErrUnknownCommand, args[0])
}

func parseList(args []string, line string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: ls t|m|p|u|a", errors.ErrMissingArgs)
	}
	switch args[0] {
	case "t":
		return Command{Kind: ListTopics}, nil
	case "m":
		cmd := Command{Kind: ListMessages}
		if len(args) > 1 {
			cmd.Topic = args[1]
		}
		return cmd, nil
	case "p":
		return Command{Kind: ListPeers}, nil
	case "u":
		if err := want(args, 2, "u <topic>"); err != nil {
			return Command{}, err
		}
		return Command{Kind: ListMembers, Topic: args[1]}, nil
	case "a":
		return Command{Kind: ListAddrs}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, line)
}

func want(args []string, n int, form string) error {
	if len(args) < n {
		return fmt.Errorf("%w: expected %s", errors.ErrMissingArgs, form)
	}
	return nil
}

func unknownOr(err error, line string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %q", errors.ErrUnknownCommand, line)
}
