package entity

import "time"

// Message is a chat message stored under message:{id}. Its id is appended
// only to the sender-to-recipient conversation list
// messages:conversation:{senderId}:{recipientId}; readers merge both
// directions of a conversation.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
