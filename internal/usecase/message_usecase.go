package usecase

import (
	"context"
	"sort"
	"time"

	"maternacare/internal/converter"
	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MessageUsecase interface {
	Send(ctx context.Context, caller *entity.User, req *dto.SendMessageRequest) (*entity.Message, error)
	ListWith(ctx context.Context, caller *entity.User, otherUserID string) ([]*entity.Message, error)
	Conversations(ctx context.Context, caller *entity.User) ([]*dto.ConversationResponse, error)
}

type messageUsecase struct {
	log      *logrus.Logger
	messages repository.MessageRepository
	users    repository.UserRepository
	notifier Notifier
}

func NewMessageUsecase(
	log *logrus.Logger,
	messages repository.MessageRepository,
	users repository.UserRepository,
	notifier Notifier,
) MessageUsecase {
	return &messageUsecase{log: log, messages: messages, users: users, notifier: notifier}
}

func (u *messageUsecase) Send(ctx context.Context, caller *entity.User, req *dto.SendMessageRequest) (*entity.Message, error) {
	recipient, err := u.users.FindByID(ctx, req.RecipientID)
	if err != nil {
		u.log.Warnf("Failed to load recipient: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to send message", err)
	}
	if recipient == nil {
		return nil, apperr.NotFoundf("Recipient not found")
	}

	msgType := req.Type
	if msgType == "" {
		msgType = "text"
	}

	msg := &entity.Message{
		ID:          uuid.NewString(),
		SenderID:    caller.ID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		Type:        msgType,
		CreatedAt:   time.Now(),
	}
	if err := u.messages.Create(ctx, msg); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to send message", err)
	}

	if err := u.notifier.Notify(ctx, req.RecipientID,
		"New message",
		"You have a new message",
		entity.NotificationTypeMessage,
	); err != nil {
		return nil, err
	}

	return msg, nil
}

func (u *messageUsecase) ListWith(ctx context.Context, caller *entity.User, otherUserID string) ([]*entity.Message, error) {
	msgs, err := u.messages.Between(ctx, caller.ID, otherUserID)
	if err != nil {
		u.log.Warnf("Failed to load conversation: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get messages", err)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (u *messageUsecase) Conversations(ctx context.Context, caller *entity.User) ([]*dto.ConversationResponse, error) {
	indexes, err := u.messages.ConversationsOf(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to list conversations: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get conversations", err)
	}

	conversations := make([]*dto.ConversationResponse, 0, len(indexes))
	for _, idx := range indexes {
		if len(idx.MessageIDs) == 0 {
			continue
		}
		other, err := u.users.FindByID(ctx, idx.OtherUserID)
		if err != nil {
			u.log.Warnf("Failed to load conversation partner: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get conversations", err)
		}
		last, err := u.messages.FindByID(ctx, idx.MessageIDs[len(idx.MessageIDs)-1])
		if err != nil {
			u.log.Warnf("Failed to load last message: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get conversations", err)
		}
		conversations = append(conversations, &dto.ConversationResponse{
			UserID:      idx.OtherUserID,
			User:        converter.UserToResponse(other),
			LastMessage: last,
		})
	}
	return conversations, nil
}
