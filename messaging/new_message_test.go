package messaging_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/shaddyshad/p2p-chat/domain"
	pkgerr "github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/messaging"
	"github.com/shaddyshad/p2p-chat/mocks"
	"github.com/shaddyshad/p2p-chat/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// subscribed answers that pA listens to chat001.
func subscribed(ctrl *gomock.Controller) *mocks.MockSubscriptions {
	subscriptions := mocks.NewMockSubscriptions(ctrl)
	subscriptions.EXPECT().IsSubscribed("pA", "chat001").Return(true).AnyTimes()
	return subscriptions
}

func Test_Send_Stores_Then_Publishes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a message not yet sent
	store := storage.NewMemoryStore[domain.Message]()
	publisher := mocks.NewMockPublisher[domain.Message](ctrl)
	var published []domain.Message
	publisher.EXPECT().Publish(gomock.Any()).DoAndReturn(func(m domain.Message) error {
		published = append(published, m)
		return nil
	}).Times(1)
	msg := messaging.MessageFor(domain.NewPeer("pA", "alice"), "chat001", "hi", store, subscribed(ctrl), publisher, slog.Default())
	exists, err := msg.Exists()
	req.NoError(err)
	req.False(exists)

	// When it is sent
	req.NoError(msg.Send())

	// Then it is stored and published once
	exists, err = msg.Exists()
	req.NoError(err)
	req.True(exists)
	req.Len(published, 1)
	req.Equal("hi", published[0].Body)
	req.Equal("chat001", published[0].GroupName)
	req.Equal("pA", published[0].Source)
}

func Test_Send_Storage_Failure_Does_Not_Publish(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a failing store
	store := mocks.NewMockStore[domain.Message](ctrl)
	store.EXPECT().Save(gomock.Any()).Return(pkgerr.ErrStorageFailure)
	publisher := mocks.NewMockPublisher[domain.Message](ctrl)
	publisher.EXPECT().Publish(gomock.Any()).Times(0)
	msg := messaging.MessageFor(domain.NewPeer("pA", "alice"), "chat001", "hi", store, subscribed(ctrl), publisher, slog.Default())

	// When it is sent
	err := msg.Send()

	// Then
	req.ErrorIs(err, pkgerr.ErrStorageFailure)
}

func Test_Send_Publish_Failure_Keeps_Message(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a publisher without network
	store := storage.NewMemoryStore[domain.Message]()
	publisher := mocks.NewMockPublisher[domain.Message](ctrl)
	publisher.EXPECT().Publish(gomock.Any()).Return(fmt.Errorf("%w: no peers", pkgerr.ErrNetwork))
	msg := messaging.MessageFor(domain.NewPeer("pA", "alice"), "chat001", "hi", store, subscribed(ctrl), publisher, slog.Default())

	// When it is sent
	err := msg.Send()

	// Then the message is stored anyway
	req.NoError(err)
	exists, err := msg.Exists()
	req.NoError(err)
	req.True(exists)
}

func Test_Send_Requires_Subscription(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a peer that never joined the topic
	store := storage.NewMemoryStore[domain.Message]()
	subscriptions := mocks.NewMockSubscriptions(ctrl)
	subscriptions.EXPECT().IsSubscribed("pA", "never-joined").Return(false)
	publisher := mocks.NewMockPublisher[domain.Message](ctrl)
	publisher.EXPECT().Publish(gomock.Any()).Times(0)
	msg := messaging.MessageFor(domain.NewPeer("pA", "alice"), "never-joined", "hi", store, subscriptions, publisher, slog.Default())

	// When it sends a message there
	err := msg.Send()

	// Then it is refused and nothing is stored
	req.ErrorIs(err, pkgerr.ErrNotSubscribed)
	stored, err := store.List()
	req.NoError(err)
	req.Empty(stored)
}

func Test_Send_Invalid_Message_Touches_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a message without topic
	store := mocks.NewMockStore[domain.Message](ctrl)
	store.EXPECT().Save(gomock.Any()).Times(0)
	subscriptions := mocks.NewMockSubscriptions(ctrl)
	subscriptions.EXPECT().IsSubscribed(gomock.Any(), gomock.Any()).Times(0)
	publisher := mocks.NewMockPublisher[domain.Message](ctrl)
	publisher.EXPECT().Publish(gomock.Any()).Times(0)
	msg := messaging.MessageFor(domain.NewPeer("pA", "alice"), "", "hi", store, subscriptions, publisher, slog.Default())

	// When it is sent
	err := msg.Send()

	// Then validation fails first
	req.Error(err)
}
