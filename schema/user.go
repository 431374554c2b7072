package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeCitizen = "citizen"
	UserTypeLawyer  = "lawyer"
	UserTypeAdmin   = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Username     string    `json:"username" gorm:"unique_index;not null"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	UserType     string    `json:"user_type" gorm:"not null"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	CitizenProfile *CitizenProfile `json:"citizen_profile,omitempty" gorm:"foreignkey:UserID"`
	LawyerProfile  *LawyerProfile  `json:"lawyer_profile,omitempty" gorm:"foreignkey:UserID"`
	AdminProfile   *AdminProfile   `json:"admin_profile,omitempty" gorm:"foreignkey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display purposes.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

type CitizenProfile struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;unique_index;not null"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	CNIC        string     `json:"cnic" gorm:"unique_index;not null"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (CitizenProfile) TableName() string {
	return "citizen_profiles"
}

type LawyerSpecialty struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name        string    `json:"name" gorm:"unique_index;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (LawyerSpecialty) TableName() string {
	return "lawyer_specialties"
}

type LawyerProfile struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;unique_index;not null"`
	BarCouncilNumber string     `json:"bar_council_number" gorm:"unique_index;not null"`
	ExperienceYears  int        `json:"experience_years"`
	ConsultationFee  float64    `json:"consultation_fee"`
	IsVerified       bool       `json:"is_verified" gorm:"not null"`
	Bio              string     `json:"bio"`
	City             string     `json:"city"`
	CNIC             string     `json:"cnic"`
	Address          string     `json:"address"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`
	VerifiedByID     *uuid.UUID `json:"verified_by,omitempty" gorm:"type:uuid"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	User        *User             `json:"user,omitempty" gorm:"foreignkey:UserID"`
	Specialties []LawyerSpecialty `json:"specialties" gorm:"many2many:lawyer_specialty_link"`
}

func (LawyerProfile) TableName() string {
	return "lawyer_profiles"
}

type AdminProfile struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;unique_index;not null"`
	Department string    `json:"department"`
	EmployeeID string    `json:"employee_id" gorm:"unique_index"`
	CreatedAt  time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}
