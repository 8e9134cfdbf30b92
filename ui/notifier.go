// Package ui prints what happens on the network to the terminal.
// It observes events and never modifies domain state.
package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
)

// Censor masks a message body, see moderation.Moderator.
type Censor interface {
	Censor(text string) (string, []string)
}

var (
	topicStyle  = color.New(color.FgCyan, color.OpBold)
	sourceStyle = color.New(color.FgGreen)
	noticeStyle = color.New(color.FgGray)
	warnStyle   = color.New(color.FgYellow)
)

// Notifier writes one line per event.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	self    string
	censor  Censor
	colours bool
}

// NewNotifier builds a notifier for the local peer self, censor may be nil.
func NewNotifier(out io.Writer, self string, censor Censor, colours bool) *Notifier {
	return &Notifier{out: out, self: self, censor: censor, colours: colours}
}

func (n *Notifier) Handle(evt event.Event) error {
	var line string
	switch evt.Type {
	case event.MessageType:
		msg, ok := evt.Payload.(domain.Message)
		if !ok {
			return errors.ErrInvalidPayload
		}
		line = n.message(msg)
	case event.SubscribedType, event.UnsubscribedType:
		sub, ok := evt.Payload.(event.Subscription)
		if !ok {
			return errors.ErrInvalidPayload
		}
		verb := "joined"
		if evt.Type == event.UnsubscribedType {
			verb = "left"
		}
		line = n.paint(noticeStyle, fmt.Sprintf("* %s %s %s", short(sub.Peer), verb, sub.Topic))
	case event.PeerAddedType, event.PeerRemovedType:
		change, ok := evt.Payload.(event.PeerChange)
		if !ok {
			return errors.ErrInvalidPayload
		}
		if evt.Type == event.PeerAddedType {
			line = n.paint(noticeStyle, fmt.Sprintf("+ peer %s", short(change.Peer)))
		} else {
			line = n.paint(warnStyle, fmt.Sprintf("- peer %s", short(change.Peer)))
		}
	default:
		return nil
	}
	return n.println(line)
}

func (n *Notifier) message(msg domain.Message) string {
	body := msg.Body
	if n.censor != nil {
		body, _ = n.censor.Censor(body)
	}
	source := short(msg.Source)
	if msg.Source == n.self {
		source = "me"
	}
	prefix := fmt.Sprintf("%s %s:", n.paint(topicStyle, "["+msg.GroupName+"]"), n.paint(sourceStyle, source))
	if msg.ReplyID != nil {
		prefix += n.paint(noticeStyle, fmt.Sprintf(" (re %s)", short(msg.ReplyID.String())))
	}
	return prefix + " " + body
}

// Println writes a line while no event is being printed.
func (n *Notifier) Println(line string) error {
	return n.println(line)
}

func (n *Notifier) println(line string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintln(n.out, line)
	return err
}

func (n *Notifier) paint(style color.Style, text string) string {
	if !n.colours {
		return text
	}
	return style.Render(text)
}

// short keeps the tail of long peer ids, the head is the same for every Ed25519 key.
func short(id string) string {
	const keep = 8
	if len(id) <= keep {
		return id
	}
	return "…" + id[len(id)-keep:]
}
