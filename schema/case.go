package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	CaseStatusActive  = "active"
	CaseStatusClosed  = "closed"
	CaseStatusPending = "pending"
)

// Case is the formal engagement created once a request progresses. It is
// created by the system when a case request enters in_progress, never
// directly by a user. Its status is managed independently from the
// originating request.
type Case struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	CitizenID     uuid.UUID  `json:"citizen" gorm:"type:uuid;not null"`
	LawyerID      uuid.UUID  `json:"lawyer" gorm:"type:uuid;not null"`
	CaseRequestID *uuid.UUID `json:"case_request,omitempty" gorm:"type:uuid;unique_index"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	CaseNumber    string     `json:"case_number" gorm:"unique_index;not null"`
	FilingDate    time.Time  `json:"filing_date"`
	Status        string     `json:"status" sql:"default:'active'"`

	Citizen  *CitizenProfile `json:"citizen_details,omitempty" gorm:"foreignkey:CitizenID"`
	Lawyer   *LawyerProfile  `json:"lawyer_details,omitempty" gorm:"foreignkey:LawyerID"`
	Hearings []Hearing       `json:"hearings" gorm:"foreignkey:CaseID"`
	Updates  []CaseUpdate    `json:"updates" gorm:"foreignkey:CaseID"`
}

func (Case) TableName() string {
	return "cases"
}

// Hearing is a scheduled court appearance tied to a case.
type Hearing struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	CaseID      uuid.UUID  `json:"case" gorm:"type:uuid;not null"`
	Title       string     `json:"title" sql:"default:'Court Hearing'"`
	HearingDate time.Time  `json:"hearing_date"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
	NextDate    *time.Time `json:"next_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Hearing) TableName() string {
	return "hearings"
}

// CaseUpdate is a lawyer-authored progress note on a case.
type CaseUpdate struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CaseID      uuid.UUID `json:"case" gorm:"type:uuid;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	CreatedByID uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt   time.Time `json:"created_at"`

	CreatedBy *User `json:"created_by_details,omitempty" gorm:"foreignkey:CreatedByID"`
}

func (CaseUpdate) TableName() string {
	return "case_updates"
}
