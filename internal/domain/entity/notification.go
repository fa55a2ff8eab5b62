package entity

import "time"

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeSystem      NotificationType = "system"
)

// Notification is stored under notification:{id}; its id lives in exactly
// one user's notifications:user:{userId} list.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	ReadAt    *time.Time       `json:"readAt,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
