package store

import (
	"github.com/jinzhu/gorm"

	"github.com/qanoon-assist/qanoon-api/schema"
)

// Role-scoped query filters. Every read of case requests, cases, hearings,
// case updates, and messages goes through one of these so the visibility
// rules live in exactly one place: citizens see rows where they are the
// requesting party, lawyers see rows where they are the assigned lawyer,
// admins see everything. Any other role matches nothing.

// denyAll returns a query that can never match a row. Unrecognized roles and
// users missing the profile their role implies fall through to it.
func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func scopeCaseRequests(db *gorm.DB, viewer *schema.User) *gorm.DB {
	switch viewer.UserType {
	case schema.UserTypeCitizen:
		if viewer.CitizenProfile == nil {
			return denyAll(db)
		}
		return db.Where("case_requests.requester_id = ?", viewer.CitizenProfile.ID)
	case schema.UserTypeLawyer:
		if viewer.LawyerProfile == nil {
			return denyAll(db)
		}
		return db.Where("case_requests.lawyer_id = ?", viewer.LawyerProfile.ID)
	case schema.UserTypeAdmin:
		return db
	}
	return denyAll(db)
}

func scopeCases(db *gorm.DB, viewer *schema.User) *gorm.DB {
	switch viewer.UserType {
	case schema.UserTypeCitizen:
		if viewer.CitizenProfile == nil {
			return denyAll(db)
		}
		return db.Where("cases.citizen_id = ?", viewer.CitizenProfile.ID)
	case schema.UserTypeLawyer:
		if viewer.LawyerProfile == nil {
			return denyAll(db)
		}
		return db.Where("cases.lawyer_id = ?", viewer.LawyerProfile.ID)
	case schema.UserTypeAdmin:
		return db
	}
	return denyAll(db)
}

// scopeCaseChildren filters case-owned records (hearings, case updates) by
// joining through their parent case.
func scopeCaseChildren(db *gorm.DB, viewer *schema.User, table string) *gorm.DB {
	joined := db.Joins("JOIN cases ON cases.id = " + table + ".case_id")
	return scopeCases(joined, viewer)
}

// scopeMessages filters messages by joining through their case request.
func scopeMessages(db *gorm.DB, viewer *schema.User) *gorm.DB {
	joined := db.Joins("JOIN case_requests ON case_requests.id = messages.case_request_id")
	return scopeCaseRequests(joined, viewer)
}

// participatesInThread reports whether the viewer is one of the two parties
// on a case request. Admins are deliberately excluded: threads are private
// to the requester and the assigned lawyer for write purposes.
func participatesInThread(viewer *schema.User, request *schema.CaseRequest) bool {
	switch viewer.UserType {
	case schema.UserTypeCitizen:
		return viewer.CitizenProfile != nil && viewer.CitizenProfile.ID == request.RequesterID
	case schema.UserTypeLawyer:
		return viewer.LawyerProfile != nil && viewer.LawyerProfile.ID == request.LawyerID
	}
	return false
}
