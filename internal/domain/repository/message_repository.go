package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// ConversationIndex is one directional conversation list owned by a user.
type ConversationIndex struct {
	OtherUserID string
	MessageIDs  []string
}

// MessageRepository manages messages and the directional conversation
// index. Create appends only to the sender-to-recipient list; Between
// merges both directions.
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	Between(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error)
	ConversationsOf(ctx context.Context, userID string) ([]ConversationIndex, error)
}
