package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/qanoon-assist/qanoon-api/schema"
)

// qanoon main datastore
type QanoonCore interface {
	Ping() error

	// Users and profiles
	CreateCitizen(params CitizenRegistration) (*schema.User, error)
	CreateLawyer(params LawyerRegistration) (*schema.User, error)
	GetUser(id uuid.UUID) (*schema.User, error)
	GetUserByUsername(username string) (*schema.User, error)
	ListSpecialties() ([]schema.LawyerSpecialty, error)
	ListVerifiedLawyers(city string, specialtyID *uuid.UUID) ([]schema.LawyerProfile, error)
	ListUnverifiedLawyers() ([]schema.LawyerProfile, error)
	LawyerStats() (*LawyerStats, error)
	VerifyLawyer(lawyerID, verifiedBy uuid.UUID) (*schema.LawyerProfile, error)
	UnverifyLawyer(lawyerID uuid.UUID) (*schema.LawyerProfile, error)

	// Case request lifecycle
	CreateCaseRequest(viewer *schema.User, params CaseRequestParams) (*schema.CaseRequest, error)
	GetCaseRequest(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error)
	ListCaseRequests(viewer *schema.User) ([]schema.CaseRequest, error)
	AcceptCaseRequest(viewer *schema.User, id uuid.UUID, message string) (*schema.CaseRequest, error)
	RejectCaseRequest(viewer *schema.User, id uuid.UUID, message string) (*schema.CaseRequest, error)
	StartCaseProgress(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error)
	CompleteCaseRequest(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error)
	MarkCaseRequestViewed(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error)
	CaseRequestStats(viewer *schema.User) (*schema.CaseRequestStats, error)

	// Cases and their records
	ListCases(viewer *schema.User) ([]schema.Case, error)
	GetCase(viewer *schema.User, id uuid.UUID) (*schema.Case, error)
	CreateHearing(viewer *schema.User, params HearingParams) (*schema.Hearing, error)
	ListHearings(viewer *schema.User) ([]schema.Hearing, error)
	CreateCaseUpdate(viewer *schema.User, params CaseUpdateParams) (*schema.CaseUpdate, error)
	ListCaseUpdates(viewer *schema.User) ([]schema.CaseUpdate, error)

	// Messaging
	CreateMessage(viewer *schema.User, caseRequestID uuid.UUID, content, attachment string) (*schema.Message, error)
	ListMessages(viewer *schema.User) ([]schema.Message, error)
	ListThread(viewer *schema.User, caseRequestID uuid.UUID) ([]schema.Message, error)
	UnreadCount(viewer *schema.User) (int, error)
	MessageStats(viewer *schema.User) (*schema.MessageStats, error)

	// Knowledge base
	ListCategories() ([]schema.LegalCategory, error)
	SearchArticles(term string, categoryID *uuid.UUID) ([]schema.LegalArticle, error)

	// Admin dashboard
	DashboardStats() (*DashboardStats, error)
	RecentActivity() (*RecentActivity, error)
}

// QanoonStore is an implementation of QanoonCore
type QanoonStore struct {
	ormDB *gorm.DB
}

func NewQanoonStore(ormDB *gorm.DB) *QanoonStore {
	return &QanoonStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *QanoonStore) Ping() error {
	return s.ormDB.DB().Ping()
}
