package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named chat room. The name doubles as the pub/sub topic.
type Group struct {
	ID        uuid.UUID `validate:"required"`
	Name      string    `validate:"required,max=64"`
	Creator   string    `validate:"required"` // peer id
	CreatedAt time.Time
}

func NewGroup(name, creator string) Group {
	return Group{
		ID:        uuid.New(),
		Name:      name,
		Creator:   creator,
		CreatedAt: time.Now().UTC(),
	}
}

func (g Group) Equal(other Group) bool {
	return g.ID == other.ID
}
