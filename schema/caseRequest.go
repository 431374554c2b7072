package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending    = "pending"
	RequestStatusAccepted   = "accepted"
	RequestStatusRejected   = "rejected"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// ValidUrgency reports whether a given urgency value is one of the
// accepted levels.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// IsFinalRequestStatus reports whether a case request status is terminal.
// No transition leaves a rejected or completed request.
func IsFinalRequestStatus(status string) bool {
	return status == RequestStatusRejected || status == RequestStatusCompleted
}

// CaseRequest is a citizen's solicitation of legal help from a specific
// lawyer. The (requester, lawyer, case_title) triple is unique.
type CaseRequest struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	RequesterID     uuid.UUID  `json:"requester" gorm:"type:uuid;not null;unique_index:idx_request_requester_lawyer_title"`
	LawyerID        uuid.UUID  `json:"lawyer" gorm:"type:uuid;not null;unique_index:idx_request_requester_lawyer_title"`
	CaseTitle       string     `json:"case_title" gorm:"not null;unique_index:idx_request_requester_lawyer_title"`
	CaseType        string     `json:"case_type"`
	Description     string     `json:"description"`
	Urgency         string     `json:"urgency" sql:"default:'medium'"`
	Status          string     `json:"status" sql:"default:'pending'"`
	RequestDate     time.Time  `json:"request_date"`
	ResponseMessage string     `json:"response_message"`
	ResponseDate    *time.Time `json:"response_date,omitempty"`
	LastViewedAt    *time.Time `json:"last_viewed_at,omitempty"`

	Requester *CitizenProfile `json:"requester_details,omitempty" gorm:"foreignkey:RequesterID"`
	Lawyer    *LawyerProfile  `json:"lawyer_details,omitempty" gorm:"foreignkey:LawyerID"`

	// Computed at read time for the current viewer, never stored.
	CaseID              *uuid.UUID `json:"case_id,omitempty" gorm:"-"`
	UnreadMessagesCount int        `json:"unread_messages_count" gorm:"-"`
	HasNewUpdates       bool       `json:"has_new_updates" gorm:"-"`
}

func (CaseRequest) TableName() string {
	return "case_requests"
}

// CaseRequestStats counts a party's requests by status.
type CaseRequestStats struct {
	TotalRequests int `json:"total_requests"`
	Pending       int `json:"pending"`
	Accepted      int `json:"accepted"`
	InProgress    int `json:"in_progress"`
	Completed     int `json:"completed"`
	Rejected      int `json:"rejected"`
}
