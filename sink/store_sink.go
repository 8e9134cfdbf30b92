// Package sink holds observers writing network events somewhere durable.
package sink

import (
	"fmt"
	"log/slog"

	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/domain/event"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/messaging"
	"github.com/shaddyshad/p2p-chat/storage"
)

// StoreSink persists inbound messages so they show up in listings.
// A message already stored, for instance one this peer sent, is skipped.
type StoreSink struct {
	store storage.Store[domain.Message]
	log   *slog.Logger
}

func NewStoreSink(store storage.Store[domain.Message], log *slog.Logger) *StoreSink {
	return &StoreSink{store: store, log: log}
}

func (s *StoreSink) Handle(evt event.Event) error {
	if evt.Type != event.MessageType {
		return nil
	}
	msg, ok := evt.Payload.(domain.Message)
	if !ok {
		return errors.ErrInvalidPayload
	}
	_, found, err := s.store.FindOne(messaging.MessageByID(msg.ID))
	if err != nil {
		return err
	}
	if found {
		s.log.Debug(fmt.Sprintf("Message %s already stored", msg.ID))
		return nil
	}
	return s.store.Save(msg)
}
