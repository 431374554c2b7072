package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/qanoon-assist/qanoon-api/schema"
)

var (
	ErrCaseNotFound  = fmt.Errorf("the case does not exist")
	ErrNotCaseLawyer = fmt.Errorf("only the assigned lawyer can add records to this case")
)

// HearingParams carries the lawyer-provided fields of a new hearing.
type HearingParams struct {
	CaseID      uuid.UUID
	Title       string
	HearingDate time.Time
	Location    string
	Notes       string
	NextDate    *time.Time
}

// CaseUpdateParams carries the lawyer-provided fields of a progress note.
type CaseUpdateParams struct {
	CaseID      uuid.UUID
	Title       string
	Description string
}

// ListCases returns the viewer's cases with their hearing and update
// history, newest filing first.
func (s *QanoonStore) ListCases(viewer *schema.User) ([]schema.Case, error) {
	cases := []schema.Case{}
	query := scopeCases(s.ormDB, viewer).
		Preload("Citizen.User").
		Preload("Lawyer.User").
		Preload("Hearings").
		Preload("Updates").
		Order("filing_date DESC")
	if err := query.Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// GetCase returns a single case if it is visible to the viewer.
func (s *QanoonStore) GetCase(viewer *schema.User, id uuid.UUID) (*schema.Case, error) {
	var c schema.Case
	query := scopeCases(s.ormDB, viewer).
		Preload("Citizen.User").
		Preload("Lawyer.User").
		Preload("Hearings").
		Preload("Updates").
		Where("cases.id = ?", id)
	if err := query.First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CreateHearing schedules a hearing on a case. The viewer must be the
// case's assigned lawyer.
func (s *QanoonStore) CreateHearing(viewer *schema.User, params HearingParams) (*schema.Hearing, error) {
	if _, err := s.caseForLawyer(viewer, params.CaseID); err != nil {
		return nil, err
	}

	title := params.Title
	if title == "" {
		title = "Court Hearing"
	}

	hearing := schema.Hearing{
		ID:          uuid.New(),
		CaseID:      params.CaseID,
		Title:       title,
		HearingDate: params.HearingDate,
		Location:    params.Location,
		Notes:       params.Notes,
		NextDate:    params.NextDate,
	}

	if err := s.ormDB.Create(&hearing).Error; err != nil {
		return nil, err
	}
	return &hearing, nil
}

// ListHearings returns hearings on the viewer's cases, most recent hearing
// date first.
func (s *QanoonStore) ListHearings(viewer *schema.User) ([]schema.Hearing, error) {
	hearings := []schema.Hearing{}
	query := scopeCaseChildren(s.ormDB, viewer, "hearings").
		Order("hearing_date DESC")
	if err := query.Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

// CreateCaseUpdate records a progress note on a case. The viewer must be
// the case's assigned lawyer.
func (s *QanoonStore) CreateCaseUpdate(viewer *schema.User, params CaseUpdateParams) (*schema.CaseUpdate, error) {
	if _, err := s.caseForLawyer(viewer, params.CaseID); err != nil {
		return nil, err
	}

	update := schema.CaseUpdate{
		ID:          uuid.New(),
		CaseID:      params.CaseID,
		Title:       params.Title,
		Description: params.Description,
		CreatedByID: viewer.ID,
	}

	if err := s.ormDB.Create(&update).Error; err != nil {
		return nil, err
	}
	return &update, nil
}

// ListCaseUpdates returns progress notes on the viewer's cases, newest
// first.
func (s *QanoonStore) ListCaseUpdates(viewer *schema.User) ([]schema.CaseUpdate, error) {
	updates := []schema.CaseUpdate{}
	query := scopeCaseChildren(s.ormDB, viewer, "case_updates").
		Preload("CreatedBy").
		Order("case_updates.created_at DESC")
	if err := query.Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

// caseForLawyer loads a case and checks the viewer is its assigned lawyer.
func (s *QanoonStore) caseForLawyer(viewer *schema.User, id uuid.UUID) (*schema.Case, error) {
	var c schema.Case
	if err := s.ormDB.Where("id = ?", id).First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	if viewer.LawyerProfile == nil || viewer.LawyerProfile.ID != c.LawyerID {
		return nil, ErrNotCaseLawyer
	}
	return &c, nil
}
