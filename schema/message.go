package schema

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to a case request thread. The conversation precedes case
// creation, so threads hang off requests rather than cases.
type Message struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CaseRequestID uuid.UUID `json:"case_request" gorm:"type:uuid;not null;index"`
	SenderID      uuid.UUID `json:"sender" gorm:"type:uuid;not null"`
	Content       string    `json:"content" gorm:"not null"`
	Attachment    string    `json:"attachment,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	IsRead        bool      `json:"is_read" gorm:"not null"`

	Sender *User `json:"sender_details,omitempty" gorm:"foreignkey:SenderID"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageStats counts a party's messages across all threads they
// participate in.
type MessageStats struct {
	TotalMessages int `json:"total_messages"`
	Unread        int `json:"unread"`
	Sent          int `json:"sent"`
	Received      int `json:"received"`
}
