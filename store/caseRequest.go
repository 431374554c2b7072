package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/qanoon-assist/qanoon-api/schema"
)

var (
	ErrDuplicateCaseRequest = fmt.Errorf("a request for this case has already been sent to this lawyer")
	ErrCaseRequestNotFound  = fmt.Errorf("the case request does not exist")
	ErrNotAssignedLawyer    = fmt.Errorf("only the assigned lawyer can respond to this request")
	ErrNotRequestingCitizen = fmt.Errorf("only the requesting citizen can view this request")
	ErrRequestFinalized     = fmt.Errorf("the request has already been finalized")
	ErrStatsRoleUnsupported = fmt.Errorf("statistics are only available to citizens and lawyers")
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// CaseRequestParams carries the citizen-provided fields of a new request.
type CaseRequestParams struct {
	LawyerID    uuid.UUID
	CaseTitle   string
	CaseType    string
	Description string
	Urgency     string
}

// CreateCaseRequest files a new request from the viewer (a citizen) to a
// lawyer. The (requester, lawyer, title) triple must be unique.
func (s *QanoonStore) CreateCaseRequest(viewer *schema.User, params CaseRequestParams) (*schema.CaseRequest, error) {
	if viewer.CitizenProfile == nil {
		return nil, ErrNotRequestingCitizen
	}

	var lawyer schema.LawyerProfile
	if err := s.ormDB.Where("id = ?", params.LawyerID).First(&lawyer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}

	var existing int
	if err := s.ormDB.Model(schema.CaseRequest{}).
		Where("requester_id = ? AND lawyer_id = ? AND case_title = ?",
			viewer.CitizenProfile.ID, params.LawyerID, params.CaseTitle).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateCaseRequest
	}

	urgency := params.Urgency
	if urgency == "" {
		urgency = schema.UrgencyMedium
	}

	request := schema.CaseRequest{
		ID:          uuid.New(),
		RequesterID: viewer.CitizenProfile.ID,
		LawyerID:    params.LawyerID,
		CaseTitle:   params.CaseTitle,
		CaseType:    params.CaseType,
		Description: params.Description,
		Urgency:     urgency,
		Status:      schema.RequestStatusPending,
		RequestDate: time.Now(),
	}

	if err := s.ormDB.Create(&request).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateCaseRequest
		}
		return nil, err
	}

	return &request, nil
}

// GetCaseRequest returns a single request if it is visible to the viewer.
// Requests outside the viewer's scope answer not-found rather than
// forbidden, so existence does not leak.
func (s *QanoonStore) GetCaseRequest(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
	var request schema.CaseRequest
	query := scopeCaseRequests(s.ormDB, viewer).
		Preload("Requester.User").
		Preload("Lawyer.User").
		Where("case_requests.id = ?", id)
	if err := query.First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseRequestNotFound
		}
		return nil, err
	}

	if err := s.decorateCaseRequest(viewer, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListCaseRequests returns the viewer's requests, newest first.
func (s *QanoonStore) ListCaseRequests(viewer *schema.User) ([]schema.CaseRequest, error) {
	requests := []schema.CaseRequest{}
	query := scopeCaseRequests(s.ormDB, viewer).
		Preload("Requester.User").
		Preload("Lawyer.User").
		Order("request_date DESC")
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}

	for i := range requests {
		if err := s.decorateCaseRequest(viewer, &requests[i]); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

// respondToRequest is the shared accept/reject path. The caller must be the
// assigned lawyer, and finalized requests stay finalized except for
// re-invoking the transition that produced the current state.
func (s *QanoonStore) respondToRequest(viewer *schema.User, id uuid.UUID, status, message string) (*schema.CaseRequest, error) {
	request, err := s.requestForLawyer(viewer, id)
	if err != nil {
		return nil, err
	}

	if schema.IsFinalRequestStatus(request.Status) && request.Status != status {
		return nil, ErrRequestFinalized
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           status,
		"response_message": message,
		"response_date":    now,
	}
	if err := s.ormDB.Model(request).Updates(updates).Error; err != nil {
		return nil, err
	}

	request.Status = status
	request.ResponseMessage = message
	request.ResponseDate = &now
	return request, nil
}

// AcceptCaseRequest marks a pending request accepted with an optional
// response message. Accepting an already-accepted request rewrites the
// response fields.
func (s *QanoonStore) AcceptCaseRequest(viewer *schema.User, id uuid.UUID, message string) (*schema.CaseRequest, error) {
	if message == "" {
		message = "Request accepted"
	}
	return s.respondToRequest(viewer, id, schema.RequestStatusAccepted, message)
}

// RejectCaseRequest declines a request. Rejection is terminal.
func (s *QanoonStore) RejectCaseRequest(viewer *schema.User, id uuid.UUID, message string) (*schema.CaseRequest, error) {
	if message == "" {
		message = "Request rejected"
	}
	return s.respondToRequest(viewer, id, schema.RequestStatusRejected, message)
}

// StartCaseProgress moves a request to in_progress and, if no case
// references the request yet, opens one in the same transaction so a
// request can never gain a half-linked case. Calling it again on an
// in_progress request is a no-op with respect to case creation.
func (s *QanoonStore) StartCaseProgress(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
	request, err := s.requestForLawyer(viewer, id)
	if err != nil {
		return nil, err
	}

	if schema.IsFinalRequestStatus(request.Status) {
		return nil, ErrRequestFinalized
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Model(request).Update("status", schema.RequestStatusInProgress).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var linked int
	if err := tx.Model(schema.Case{}).Where("case_request_id = ?", request.ID).Count(&linked).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if linked == 0 {
		requestID := request.ID
		newCase := schema.Case{
			ID:            uuid.New(),
			CitizenID:     request.RequesterID,
			LawyerID:      request.LawyerID,
			CaseRequestID: &requestID,
			Title:         request.CaseTitle,
			Description:   request.Description,
			Status:        schema.CaseStatusActive,
			FilingDate:    time.Now(),
		}

		number, err := s.nextCaseNumber(tx)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		newCase.CaseNumber = number

		if err := tx.Create(&newCase).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	request.Status = schema.RequestStatusInProgress
	return request, nil
}

// CompleteCaseRequest marks a request completed. The linked case keeps its
// own status: closing it remains an explicit, separate decision.
func (s *QanoonStore) CompleteCaseRequest(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
	request, err := s.requestForLawyer(viewer, id)
	if err != nil {
		return nil, err
	}

	if schema.IsFinalRequestStatus(request.Status) && request.Status != schema.RequestStatusCompleted {
		return nil, ErrRequestFinalized
	}

	if err := s.ormDB.Model(request).Update("status", schema.RequestStatusCompleted).Error; err != nil {
		return nil, err
	}

	request.Status = schema.RequestStatusCompleted
	return request, nil
}

// MarkCaseRequestViewed stamps last_viewed_at for the requesting citizen,
// clearing the new-activity indicator. It is not a lifecycle transition.
func (s *QanoonStore) MarkCaseRequestViewed(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
	var request schema.CaseRequest
	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseRequestNotFound
		}
		return nil, err
	}

	if viewer.CitizenProfile == nil || viewer.CitizenProfile.ID != request.RequesterID {
		return nil, ErrNotRequestingCitizen
	}

	now := time.Now()
	if err := s.ormDB.Model(&request).Update("last_viewed_at", now).Error; err != nil {
		return nil, err
	}

	request.LastViewedAt = &now
	return &request, nil
}

// CaseRequestStats counts the viewer's requests grouped by status.
func (s *QanoonStore) CaseRequestStats(viewer *schema.User) (*schema.CaseRequestStats, error) {
	if viewer.UserType != schema.UserTypeCitizen && viewer.UserType != schema.UserTypeLawyer {
		return nil, ErrStatsRoleUnsupported
	}

	stats := schema.CaseRequestStats{}
	counts := []struct {
		status string
		target *int
	}{
		{schema.RequestStatusPending, &stats.Pending},
		{schema.RequestStatusAccepted, &stats.Accepted},
		{schema.RequestStatusInProgress, &stats.InProgress},
		{schema.RequestStatusCompleted, &stats.Completed},
		{schema.RequestStatusRejected, &stats.Rejected},
	}

	base := scopeCaseRequests(s.ormDB.Model(schema.CaseRequest{}), viewer)
	if err := base.Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		if err := base.Where("status = ?", c.status).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// requestForLawyer loads a request and checks the viewer is its assigned
// lawyer. All lifecycle transitions go through here.
func (s *QanoonStore) requestForLawyer(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
	var request schema.CaseRequest
	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseRequestNotFound
		}
		return nil, err
	}

	if viewer.LawyerProfile == nil || viewer.LawyerProfile.ID != request.LawyerID {
		return nil, ErrNotAssignedLawyer
	}

	return &request, nil
}

// nextCaseNumber generates a human-readable case number of the form
// QA-<year>-<suffix> that does not collide with an existing case. Random
// four-digit suffixes are retried a few times before falling back to a
// uuid fragment, which cannot realistically collide.
func (s *QanoonStore) nextCaseNumber(tx *gorm.DB) (string, error) {
	year := time.Now().Year()

	for attempt := 0; attempt < 5; attempt++ {
		candidate := fmt.Sprintf("QA-%d-%04d", year, 1000+rand.Intn(9000))

		var taken int
		if err := tx.Model(schema.Case{}).Where("case_number = ?", candidate).Count(&taken).Error; err != nil {
			return "", err
		}
		if taken == 0 {
			return candidate, nil
		}
	}

	return fmt.Sprintf("QA-%d-%s", year, uuid.New().String()[:8]), nil
}

// decorateCaseRequest fills the read-time computed fields: the linked case
// id, the viewer's unread message count in the thread, and the citizen's
// new-activity indicator.
func (s *QanoonStore) decorateCaseRequest(viewer *schema.User, request *schema.CaseRequest) error {
	var linked schema.Case
	err := s.ormDB.Where("case_request_id = ?", request.ID).First(&linked).Error
	hasCase := err == nil
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		return err
	}
	if hasCase {
		caseID := linked.ID
		request.CaseID = &caseID
	}

	var unread int
	if err := s.ormDB.Model(schema.Message{}).
		Where("case_request_id = ? AND is_read = ? AND sender_id <> ?", request.ID, false, viewer.ID).
		Count(&unread).Error; err != nil {
		return err
	}
	request.UnreadMessagesCount = unread

	// The indicator is citizen-facing only and needs a linked case to mean
	// anything.
	if viewer.UserType != schema.UserTypeCitizen || !hasCase {
		request.HasNewUpdates = false
		return nil
	}

	hearings := s.ormDB.Model(schema.Hearing{}).Where("case_id = ?", linked.ID)
	updates := s.ormDB.Model(schema.CaseUpdate{}).Where("case_id = ?", linked.ID)
	if request.LastViewedAt != nil {
		hearings = hearings.Where("created_at > ?", *request.LastViewedAt)
		updates = updates.Where("created_at > ?", *request.LastViewedAt)
	}

	var hearingCount, updateCount int
	if err := hearings.Count(&hearingCount).Error; err != nil {
		return err
	}
	if err := updates.Count(&updateCount).Error; err != nil {
		return err
	}

	request.HasNewUpdates = hearingCount+updateCount > 0
	return nil
}
