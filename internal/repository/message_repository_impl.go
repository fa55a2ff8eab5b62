package repository

import (
	"context"
	"strings"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"
)

type messageRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewMessageRepository(store kv.Store) domainRepo.MessageRepository {
	return &messageRepository{store: store, locks: newKeyMutex()}
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	if err := setJSON(ctx, r.store, messageKey(msg.ID), msg); err != nil {
		return err
	}
	key := conversationKey(msg.SenderID, msg.RecipientID)
	mu := r.locks.Lock(key)
	defer mu.Unlock()
	return appendToList(ctx, r.store, key, msg.ID)
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	var msg entity.Message
	found, err := getJSON(ctx, r.store, messageKey(id), &msg)
	if err != nil || !found {
		return nil, err
	}
	return &msg, nil
}

// Between merges both directional conversation lists; ordering is left to
// the caller.
func (r *messageRepository) Between(ctx context.Context, userID, otherUserID string) ([]*entity.Message, error) {
	sent, err := getIDList(ctx, r.store, conversationKey(userID, otherUserID))
	if err != nil {
		return nil, err
	}
	received, err := getIDList(ctx, r.store, conversationKey(otherUserID, userID))
	if err != nil {
		return nil, err
	}
	ids := append(sent, received...)
	msgs := make([]*entity.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

func (r *messageRepository) ConversationsOf(ctx context.Context, userID string) ([]domainRepo.ConversationIndex, error) {
	prefix := conversationPrefix + userID + ":"
	entries, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	indexes := make([]domainRepo.ConversationIndex, 0, len(entries))
	for _, e := range entries {
		ids, err := getIDList(ctx, r.store, e.Key)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, domainRepo.ConversationIndex{
			OtherUserID: strings.TrimPrefix(e.Key, prefix),
			MessageIDs:  ids,
		})
	}
	return indexes, nil
}
