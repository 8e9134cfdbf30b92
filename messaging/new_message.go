package messaging

import (
	"fmt"
	"log/slog"

	"github.com/shaddyshad/p2p-chat/contract"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/storage"
)

// NewMessage sends a pre-built message: it is stored locally first and only
// published once stored. The sender must be subscribed to the message topic.
type NewMessage struct {
	Message       domain.Message
	Storage       storage.Store[domain.Message]
	Subscriptions contract.Subscriptions
	Publisher     contract.Publisher[domain.Message]
	Log           *slog.Logger
}

// Send persists then publishes the message. An invalid message, a sender that
// is not subscribed or a storage failure is returned and nothing is published.
// Publication is best effort: a failure is logged only.
func (n *NewMessage) Send() error {
	if err := domain.Validate(n.Message); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	if !n.Subscriptions.IsSubscribed(n.Message.Source, n.Message.GroupName) {
		return fmt.Errorf("%w: %s", errors.ErrNotSubscribed, n.Message.GroupName)
	}
	if err := n.Storage.Save(n.Message); err != nil {
		return err
	}
	if err := n.Publisher.Publish(n.Message); err != nil && n.Log != nil {
		n.Log.Warn("Message stored but not published",
			"id", n.Message.ID,
			"topic", n.Message.GroupName,
			"error", err)
	}
	return nil
}

// Exists reports whether the message is in the local store.
func (n *NewMessage) Exists() (bool, error) {
	_, ok, err := n.Storage.FindOne(MessageByID(n.Message.ID))
	return ok, err
}
