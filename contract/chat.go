//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat.go -package=mocks
package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/shaddyshad/p2p-chat/domain"
)

// Chat is what the terminal drives on behalf of the local peer.
type Chat interface {
	CreateGroup(name string) (bool, error)
	JoinGroup(name string) bool
	LeaveGroup(name string) bool
	Groups() ([]domain.Group, error)

	Send(topic, body string) (domain.Message, error)
	Reply(topic string, replyID uuid.UUID, body string) (domain.Message, error)
	Messages(topic string) ([]domain.Message, error)

	Peers() []string
	Members(topic string) []string
	ListenAddrs() []string
	Dial(ctx context.Context, addr string) error
}
