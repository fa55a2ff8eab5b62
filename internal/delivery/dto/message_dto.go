package dto

import "maternacare/internal/domain/entity"

type SendMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Type        string `json:"type"`
}

// ConversationResponse summarizes one conversation for the inbox view.
type ConversationResponse struct {
	UserID      string          `json:"userId"`
	User        *UserResponse   `json:"user"`
	LastMessage *entity.Message `json:"lastMessage"`
	UnreadCount int             `json:"unreadCount"`
}
