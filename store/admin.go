package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/qanoon-assist/qanoon-api/schema"
)

// DashboardStats aggregates platform-wide counts for the admin dashboard.
type DashboardStats struct {
	TotalUsers          int `json:"total_users"`
	TotalCitizens       int `json:"total_citizens"`
	TotalLawyers        int `json:"total_lawyers"`
	VerifiedLawyers     int `json:"verified_lawyers"`
	PendingVerification int `json:"pending_verification"`

	TotalCaseRequests int `json:"total_case_requests"`
	PendingRequests   int `json:"pending_requests"`
	AcceptedRequests  int `json:"accepted_requests"`
	InProgressCases   int `json:"in_progress_cases"`
	CompletedCases    int `json:"completed_cases"`
	RejectedRequests  int `json:"rejected_requests"`

	TotalCases  int `json:"total_cases"`
	ActiveCases int `json:"active_cases"`

	TotalHearings    int `json:"total_hearings"`
	UpcomingHearings int `json:"upcoming_hearings"`
	TotalCaseUpdates int `json:"total_case_updates"`

	TotalMessages  int `json:"total_messages"`
	UnreadMessages int `json:"unread_messages"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID         uuid.UUID `json:"id"`
	CaseNumber string    `json:"case_number,omitempty"`
	Title      string    `json:"title"`
	Citizen    string    `json:"citizen"`
	Lawyer     string    `json:"lawyer"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// RecentActivity lists the latest requests and cases on the platform.
type RecentActivity struct {
	RecentRequests []ActivityEntry `json:"recent_requests"`
	RecentCases    []ActivityEntry `json:"recent_cases"`
}

// DashboardStats collects platform-wide counts. Admin-only at the handler
// layer; the store itself has nothing to scope here.
func (s *QanoonStore) DashboardStats() (*DashboardStats, error) {
	stats := DashboardStats{}

	counts := []struct {
		query  interface{}
		where  []interface{}
		target *int
	}{
		{schema.User{}, nil, &stats.TotalUsers},
		{schema.User{}, []interface{}{"user_type = ?", schema.UserTypeCitizen}, &stats.TotalCitizens},
		{schema.LawyerProfile{}, nil, &stats.TotalLawyers},
		{schema.LawyerProfile{}, []interface{}{"is_verified = ?", true}, &stats.VerifiedLawyers},
		{schema.LawyerProfile{}, []interface{}{"is_verified = ?", false}, &stats.PendingVerification},

		{schema.CaseRequest{}, nil, &stats.TotalCaseRequests},
		{schema.CaseRequest{}, []interface{}{"status = ?", schema.RequestStatusPending}, &stats.PendingRequests},
		{schema.CaseRequest{}, []interface{}{"status = ?", schema.RequestStatusAccepted}, &stats.AcceptedRequests},
		{schema.CaseRequest{}, []interface{}{"status = ?", schema.RequestStatusInProgress}, &stats.InProgressCases},
		{schema.CaseRequest{}, []interface{}{"status = ?", schema.RequestStatusCompleted}, &stats.CompletedCases},
		{schema.CaseRequest{}, []interface{}{"status = ?", schema.RequestStatusRejected}, &stats.RejectedRequests},

		{schema.Case{}, nil, &stats.TotalCases},
		{schema.Case{}, []interface{}{"status = ?", schema.CaseStatusActive}, &stats.ActiveCases},

		{schema.Hearing{}, nil, &stats.TotalHearings},
		{schema.Hearing{}, []interface{}{"hearing_date >= ?", time.Now()}, &stats.UpcomingHearings},
		{schema.CaseUpdate{}, nil, &stats.TotalCaseUpdates},

		{schema.Message{}, nil, &stats.TotalMessages},
		{schema.Message{}, []interface{}{"is_read = ?", false}, &stats.UnreadMessages},
	}

	for _, c := range counts {
		query := s.ormDB.Model(c.query)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// RecentActivity returns the ten most recent case requests and cases with
// the parties' display names resolved.
func (s *QanoonStore) RecentActivity() (*RecentActivity, error) {
	requests := []schema.CaseRequest{}
	if err := s.ormDB.
		Preload("Requester.User").
		Preload("Lawyer.User").
		Order("request_date DESC").
		Limit(10).
		Find(&requests).Error; err != nil {
		return nil, err
	}

	cases := []schema.Case{}
	if err := s.ormDB.
		Preload("Citizen.User").
		Preload("Lawyer.User").
		Order("filing_date DESC").
		Limit(10).
		Find(&cases).Error; err != nil {
		return nil, err
	}

	activity := RecentActivity{
		RecentRequests: make([]ActivityEntry, 0, len(requests)),
		RecentCases:    make([]ActivityEntry, 0, len(cases)),
	}

	for _, r := range requests {
		entry := ActivityEntry{
			ID:     r.ID,
			Title:  r.CaseTitle,
			Status: r.Status,
			Date:   r.RequestDate,
		}
		if r.Requester != nil && r.Requester.User != nil {
			entry.Citizen = r.Requester.User.FullName()
		}
		if r.Lawyer != nil && r.Lawyer.User != nil {
			entry.Lawyer = r.Lawyer.User.FullName()
		}
		activity.RecentRequests = append(activity.RecentRequests, entry)
	}

	for _, c := range cases {
		entry := ActivityEntry{
			ID:         c.ID,
			CaseNumber: c.CaseNumber,
			Title:      c.Title,
			Status:     c.Status,
			Date:       c.FilingDate,
		}
		if c.Citizen != nil && c.Citizen.User != nil {
			entry.Citizen = c.Citizen.User.FullName()
		}
		if c.Lawyer != nil && c.Lawyer.User != nil {
			entry.Lawyer = c.Lawyer.User.FullName()
		}
		activity.RecentCases = append(activity.RecentCases, entry)
	}

	return &activity, nil
}
