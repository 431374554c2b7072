package store

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"

	"github.com/qanoon-assist/qanoon-api/schema"
)

type CaseRequestTestSuite struct {
	suite.Suite

	db    *gorm.DB
	store *QanoonStore

	citizen *schema.User
	lawyer  *schema.User
	other   *schema.User
	admin   *schema.User
}

func (s *CaseRequestTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.store = NewQanoonStore(s.db)

	s.citizen = fixtureCitizen(s.T(), s.db, "ayesha", "35202-1111111-1")
	s.lawyer = fixtureLawyer(s.T(), s.db, "bilal", "PB-1001")
	s.other = fixtureLawyer(s.T(), s.db, "dawood", "PB-1002")
	s.admin = fixtureAdmin(s.T(), s.db, "nadia")
}

func (s *CaseRequestTestSuite) TearDownTest() {
	s.db.Close()
}

// file submits a request from the suite's citizen to the suite's lawyer.
func (s *CaseRequestTestSuite) file(title string) *schema.CaseRequest {
	request, err := s.store.CreateCaseRequest(s.citizen, CaseRequestParams{
		LawyerID:    s.lawyer.LawyerProfile.ID,
		CaseTitle:   title,
		CaseType:    "criminal",
		Description: "details",
		Urgency:     schema.UrgencyHigh,
	})
	s.Require().NoError(err)
	return request
}

func (s *CaseRequestTestSuite) TestCreateDefaultsAndDuplicate() {
	request := s.file("Property dispute")
	s.Equal(schema.RequestStatusPending, request.Status)
	s.Equal(schema.UrgencyHigh, request.Urgency)
	s.False(request.RequestDate.IsZero())

	// the same triple is rejected
	_, err := s.store.CreateCaseRequest(s.citizen, CaseRequestParams{
		LawyerID:  s.lawyer.LawyerProfile.ID,
		CaseTitle: "Property dispute",
	})
	s.Equal(ErrDuplicateCaseRequest, err)

	// the same title sent to a different lawyer is a different request
	_, err = s.store.CreateCaseRequest(s.citizen, CaseRequestParams{
		LawyerID:  s.other.LawyerProfile.ID,
		CaseTitle: "Property dispute",
	})
	s.NoError(err)

	// omitted urgency falls back to medium
	defaulted, err := s.store.CreateCaseRequest(s.citizen, CaseRequestParams{
		LawyerID:  s.lawyer.LawyerProfile.ID,
		CaseTitle: "Tenancy dispute",
	})
	s.NoError(err)
	s.Equal(schema.UrgencyMedium, defaulted.Urgency)
}

func (s *CaseRequestTestSuite) TestCreateUnknownLawyer() {
	_, err := s.store.CreateCaseRequest(s.citizen, CaseRequestParams{
		LawyerID:  uuid.New(),
		CaseTitle: "Property dispute",
	})
	s.Equal(ErrLawyerNotFound, err)
}

func (s *CaseRequestTestSuite) TestCreateRequiresCitizenProfile() {
	_, err := s.store.CreateCaseRequest(s.lawyer, CaseRequestParams{
		LawyerID:  s.lawyer.LawyerProfile.ID,
		CaseTitle: "Property dispute",
	})
	s.Equal(ErrNotRequestingCitizen, err)
}

func (s *CaseRequestTestSuite) TestAcceptOnlyAssignedLawyer() {
	request := s.file("Property dispute")

	_, err := s.store.AcceptCaseRequest(s.other, request.ID, "")
	s.Equal(ErrNotAssignedLawyer, err)

	accepted, err := s.store.AcceptCaseRequest(s.lawyer, request.ID, "")
	s.Require().NoError(err)
	s.Equal(schema.RequestStatusAccepted, accepted.Status)
	s.Equal("Request accepted", accepted.ResponseMessage)
	s.NotNil(accepted.ResponseDate)

	// accepting again rewrites the response note
	accepted, err = s.store.AcceptCaseRequest(s.lawyer, request.ID, "I will take this on")
	s.Require().NoError(err)
	s.Equal("I will take this on", accepted.ResponseMessage)
}

func (s *CaseRequestTestSuite) TestRejectIsTerminal() {
	request := s.file("Property dispute")

	rejected, err := s.store.RejectCaseRequest(s.lawyer, request.ID, "")
	s.Require().NoError(err)
	s.Equal(schema.RequestStatusRejected, rejected.Status)
	s.Equal("Request rejected", rejected.ResponseMessage)

	_, err = s.store.AcceptCaseRequest(s.lawyer, request.ID, "")
	s.Equal(ErrRequestFinalized, err)

	_, err = s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Equal(ErrRequestFinalized, err)

	// repeating the transition that produced the current state is a no-op
	_, err = s.store.RejectCaseRequest(s.lawyer, request.ID, "still no")
	s.NoError(err)
}

func (s *CaseRequestTestSuite) TestStartProgressOpensOneCase() {
	request := s.file("Property dispute")

	_, err := s.store.AcceptCaseRequest(s.lawyer, request.ID, "")
	s.Require().NoError(err)

	started, err := s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestStatusInProgress, started.Status)

	cases := []schema.Case{}
	s.Require().NoError(s.db.Where("case_request_id = ?", request.ID).Find(&cases).Error)
	s.Require().Len(cases, 1)

	opened := cases[0]
	s.Equal("Property dispute", opened.Title)
	s.Equal(schema.CaseStatusActive, opened.Status)
	s.Equal(s.citizen.CitizenProfile.ID, opened.CitizenID)
	s.Equal(s.lawyer.LawyerProfile.ID, opened.LawyerID)
	s.Contains(opened.CaseNumber, fmt.Sprintf("QA-%d-", time.Now().Year()))

	// starting again must not open a second case
	_, err = s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.db.Where("case_request_id = ?", request.ID).Find(&cases).Error)
	s.Len(cases, 1)

	// a pending request may enter progress without an explicit accept
	direct := s.file("Tenancy dispute")
	_, err = s.store.StartCaseProgress(s.lawyer, direct.ID)
	s.NoError(err)
}

func (s *CaseRequestTestSuite) TestCompleteLeavesCaseOpen() {
	request := s.file("Property dispute")

	_, err := s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Require().NoError(err)

	completed, err := s.store.CompleteCaseRequest(s.lawyer, request.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestStatusCompleted, completed.Status)

	// the linked case keeps its own lifecycle
	var opened schema.Case
	s.Require().NoError(s.db.Where("case_request_id = ?", request.ID).First(&opened).Error)
	s.Equal(schema.CaseStatusActive, opened.Status)

	_, err = s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Equal(ErrRequestFinalized, err)

	_, err = s.store.CompleteCaseRequest(s.lawyer, request.ID)
	s.NoError(err)
}

func (s *CaseRequestTestSuite) TestVisibilityScoping() {
	request := s.file("Property dispute")

	listed, err := s.store.ListCaseRequests(s.citizen)
	s.Require().NoError(err)
	s.Len(listed, 1)

	listed, err = s.store.ListCaseRequests(s.lawyer)
	s.Require().NoError(err)
	s.Len(listed, 1)

	listed, err = s.store.ListCaseRequests(s.other)
	s.Require().NoError(err)
	s.Len(listed, 0)

	listed, err = s.store.ListCaseRequests(s.admin)
	s.Require().NoError(err)
	s.Len(listed, 1)

	stranger := fixtureCitizen(s.T(), s.db, "zara", "35202-2222222-2")
	listed, err = s.store.ListCaseRequests(stranger)
	s.Require().NoError(err)
	s.Len(listed, 0)

	// an out-of-scope request answers not-found, not forbidden
	_, err = s.store.GetCaseRequest(stranger, request.ID)
	s.Equal(ErrCaseRequestNotFound, err)

	// unrecognized roles and missing profiles match nothing
	clerk := &schema.User{ID: uuid.New(), UserType: "clerk"}
	listed, err = s.store.ListCaseRequests(clerk)
	s.Require().NoError(err)
	s.Len(listed, 0)

	hollow := &schema.User{ID: uuid.New(), UserType: schema.UserTypeCitizen}
	listed, err = s.store.ListCaseRequests(hollow)
	s.Require().NoError(err)
	s.Len(listed, 0)
}

func (s *CaseRequestTestSuite) TestStats() {
	first := s.file("Property dispute")
	second := s.file("Tenancy dispute")
	s.file("Inheritance claim")

	_, err := s.store.AcceptCaseRequest(s.lawyer, first.ID, "")
	s.Require().NoError(err)
	_, err = s.store.RejectCaseRequest(s.lawyer, second.ID, "")
	s.Require().NoError(err)

	for _, viewer := range []*schema.User{s.citizen, s.lawyer} {
		stats, err := s.store.CaseRequestStats(viewer)
		s.Require().NoError(err)
		s.Equal(3, stats.TotalRequests)
		s.Equal(1, stats.Pending)
		s.Equal(1, stats.Accepted)
		s.Equal(1, stats.Rejected)
		s.Equal(0, stats.InProgress)
		s.Equal(0, stats.Completed)
	}

	_, err = s.store.CaseRequestStats(s.admin)
	s.Equal(ErrStatsRoleUnsupported, err)
}

func (s *CaseRequestTestSuite) TestMarkViewedAndNewUpdates() {
	request := s.file("Property dispute")

	_, err := s.store.StartCaseProgress(s.lawyer, request.ID)
	s.Require().NoError(err)

	var opened schema.Case
	s.Require().NoError(s.db.Where("case_request_id = ?", request.ID).First(&opened).Error)

	_, err = s.store.CreateHearing(s.lawyer, HearingParams{
		CaseID:      opened.ID,
		HearingDate: time.Now().Add(24 * time.Hour),
		Location:    "Lahore High Court",
	})
	s.Require().NoError(err)

	_, err = s.store.CreateMessage(s.lawyer, request.ID, "hearing scheduled", "")
	s.Require().NoError(err)

	listed, err := s.store.ListCaseRequests(s.citizen)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Require().NotNil(listed[0].CaseID)
	s.Equal(opened.ID, *listed[0].CaseID)
	s.True(listed[0].HasNewUpdates)
	s.Equal(1, listed[0].UnreadMessagesCount)

	// the indicator never lights up for the lawyer
	listed, err = s.store.ListCaseRequests(s.lawyer)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.False(listed[0].HasNewUpdates)

	_, err = s.store.MarkCaseRequestViewed(s.lawyer, request.ID)
	s.Equal(ErrNotRequestingCitizen, err)

	viewed, err := s.store.MarkCaseRequestViewed(s.citizen, request.ID)
	s.Require().NoError(err)
	s.NotNil(viewed.LastViewedAt)

	listed, err = s.store.ListCaseRequests(s.citizen)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.False(listed[0].HasNewUpdates)
}

func (s *CaseRequestTestSuite) TestCaseNumbersUnique() {
	titles := []string{
		"Property dispute", "Tenancy dispute", "Inheritance claim",
		"Contract breach", "Custody petition",
	}

	pattern := regexp.MustCompile(fmt.Sprintf(`^QA-%d-\w+$`, time.Now().Year()))
	seen := map[string]bool{}

	for _, title := range titles {
		request := s.file(title)
		_, err := s.store.StartCaseProgress(s.lawyer, request.ID)
		s.Require().NoError(err)

		var opened schema.Case
		s.Require().NoError(s.db.Where("case_request_id = ?", request.ID).First(&opened).Error)
		s.Regexp(pattern, opened.CaseNumber)
		s.False(seen[opened.CaseNumber], "case number issued twice: %s", opened.CaseNumber)
		seen[opened.CaseNumber] = true
	}
}

func TestCaseRequestTestSuite(t *testing.T) {
	suite.Run(t, new(CaseRequestTestSuite))
}
