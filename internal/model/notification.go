package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies back-office notifications.
type NotificationKind string

// Notification kinds.
const (
	NotifyRefund     NotificationKind = "refund"
	NotifyOffset     NotificationKind = "offset"
	NotifyTypeChange NotificationKind = "type_change"
	NotifyDebit      NotificationKind = "debit"
)

// Notification is the payload for the notification-creation endpoint.
// The client assigns the id so the write is idempotent on retry by the user.
type Notification struct {
	CreatedAt time.Time        `json:"created_at"`
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	RecordID  string           `json:"record_id"`
}

// NewNotification builds a notification for the given record and actor.
func NewNotification(kind NotificationKind, userID, recordID, title, body string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		RecordID:  recordID,
		CreatedAt: time.Now().UTC(),
	}
}
