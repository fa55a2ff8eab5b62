package usecase

import (
	"context"
	"testing"
	"time"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"
	repoImpl "maternacare/internal/repository"
	"maternacare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	usecase  MessageUsecase
	notifier NotificationUsecase
	users    repository.UserRepository
	messages repository.MessageRepository
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	store := kv.NewMemoryStore()
	log := newTestLogger()
	users := repoImpl.NewUserRepository(store)
	messages := repoImpl.NewMessageRepository(store)
	notifier := NewNotificationUsecase(log, repoImpl.NewNotificationRepository(store))
	return &messageFixture{
		usecase:  NewMessageUsecase(log, messages, users, notifier),
		notifier: notifier,
		users:    users,
		messages: messages,
	}
}

func (f *messageFixture) seedUser(t *testing.T, id, name string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func TestMessageUsecase_SendNotifiesRecipient(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	mother := f.seedUser(t, "mother1", "Amina", entity.RoleMother)
	clinic := f.seedUser(t, "clinic1", "City Clinic", entity.RoleClinic)

	msg, err := f.usecase.Send(ctx, mother, &dto.SendMessageRequest{
		RecipientID: clinic.ID,
		Content:     "When is my next visit?",
	})
	require.NoError(t, err)
	assert.Equal(t, "text", msg.Type)
	assert.Equal(t, mother.ID, msg.SenderID)

	notifications, err := f.notifier.List(ctx, clinic)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New message", notifications[0].Title)
	assert.Equal(t, "You have a new message", notifications[0].Message)
	assert.Equal(t, entity.NotificationTypeMessage, notifications[0].Type)
}

func TestMessageUsecase_SendToUnknownRecipientNotFound(t *testing.T) {
	f := newMessageFixture(t)
	mother := f.seedUser(t, "mother1", "Amina", entity.RoleMother)

	_, err := f.usecase.Send(context.Background(), mother, &dto.SendMessageRequest{
		RecipientID: "ghost",
		Content:     "hello?",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestMessageUsecase_ListWithMergesAndOrdersByTime(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	mother := f.seedUser(t, "mother1", "Amina", entity.RoleMother)
	clinic := f.seedUser(t, "clinic1", "City Clinic", entity.RoleClinic)

	// Interleave both directions out of chronological order.
	now := time.Now()
	require.NoError(t, f.messages.Create(ctx, &entity.Message{
		ID: "m2", SenderID: clinic.ID, RecipientID: mother.ID,
		Content: "Tomorrow at 10", Type: "text", CreatedAt: now.Add(time.Minute),
	}))
	require.NoError(t, f.messages.Create(ctx, &entity.Message{
		ID: "m1", SenderID: mother.ID, RecipientID: clinic.ID,
		Content: "When is my next visit?", Type: "text", CreatedAt: now,
	}))
	require.NoError(t, f.messages.Create(ctx, &entity.Message{
		ID: "m3", SenderID: mother.ID, RecipientID: clinic.ID,
		Content: "Thanks!", Type: "text", CreatedAt: now.Add(2 * time.Minute),
	}))

	msgs, err := f.usecase.ListWith(ctx, mother, clinic.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
	assert.Equal(t, "m3", msgs[2].ID)
}

func TestMessageUsecase_ConversationsReturnsLastMessagePerPartner(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()
	mother := f.seedUser(t, "mother1", "Amina", entity.RoleMother)
	clinic := f.seedUser(t, "clinic1", "City Clinic", entity.RoleClinic)
	admin := f.seedUser(t, "admin1", "Root", entity.RoleAdmin)

	_, err := f.usecase.Send(ctx, mother, &dto.SendMessageRequest{RecipientID: clinic.ID, Content: "first"})
	require.NoError(t, err)
	_, err = f.usecase.Send(ctx, mother, &dto.SendMessageRequest{RecipientID: clinic.ID, Content: "second"})
	require.NoError(t, err)
	_, err = f.usecase.Send(ctx, mother, &dto.SendMessageRequest{RecipientID: admin.ID, Content: "hello admin"})
	require.NoError(t, err)

	conversations, err := f.usecase.Conversations(ctx, mother)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	byPartner := map[string]*dto.ConversationResponse{}
	for _, c := range conversations {
		byPartner[c.UserID] = c
	}
	require.Contains(t, byPartner, clinic.ID)
	assert.Equal(t, "second", byPartner[clinic.ID].LastMessage.Content)
	assert.Equal(t, "City Clinic", byPartner[clinic.ID].User.Name)
	require.Contains(t, byPartner, admin.ID)
	assert.Equal(t, "hello admin", byPartner[admin.ID].LastMessage.Content)
}
