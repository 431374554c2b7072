package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/qanoon-assist/qanoon-api/schema"
)

var ErrThreadAccessDenied = fmt.Errorf("only the requester and the assigned lawyer can access this thread")

// CreateMessage appends a message to a case request thread. The sender must
// be one of the two parties on the request.
func (s *QanoonStore) CreateMessage(viewer *schema.User, caseRequestID uuid.UUID, content, attachment string) (*schema.Message, error) {
	request, err := s.threadRequest(viewer, caseRequestID)
	if err != nil {
		return nil, err
	}

	message := schema.Message{
		ID:            uuid.New(),
		CaseRequestID: request.ID,
		SenderID:      viewer.ID,
		Content:       content,
		Attachment:    attachment,
		Timestamp:     time.Now(),
	}

	if err := s.ormDB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns every message in threads visible to the viewer,
// newest first. Unlike ListThread it never mutates read flags.
func (s *QanoonStore) ListMessages(viewer *schema.User) ([]schema.Message, error) {
	messages := []schema.Message{}
	query := scopeMessages(s.ormDB, viewer).
		Preload("Sender").
		Order("messages.timestamp DESC")
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListThread returns a thread's messages ordered oldest first and, in the
// same transaction, marks every message not sent by the viewer as read.
// The returned rows carry the read flags as they were before the call, so
// a first read still shows which peer messages were unseen.
func (s *QanoonStore) ListThread(viewer *schema.User, caseRequestID uuid.UUID) ([]schema.Message, error) {
	request, err := s.threadRequest(viewer, caseRequestID)
	if err != nil {
		return nil, err
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	messages := []schema.Message{}
	if err := tx.Preload("Sender").
		Where("case_request_id = ?", request.ID).
		Order("timestamp ASC").
		Find(&messages).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.Message{}).
		Where("case_request_id = ? AND is_read = ? AND sender_id <> ?", request.ID, false, viewer.ID).
		Update("is_read", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return messages, nil
}

// UnreadCount counts unread peer messages across every thread the viewer
// participates in.
func (s *QanoonStore) UnreadCount(viewer *schema.User) (int, error) {
	// Admins read threads without participating in them, so nothing is
	// ever unread for them.
	if viewer.UserType != schema.UserTypeCitizen && viewer.UserType != schema.UserTypeLawyer {
		return 0, nil
	}

	var count int
	query := scopeMessages(s.ormDB.Model(schema.Message{}), viewer).
		Where("messages.is_read = ? AND messages.sender_id <> ?", false, viewer.ID)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MessageStats summarizes the viewer's messaging activity.
func (s *QanoonStore) MessageStats(viewer *schema.User) (*schema.MessageStats, error) {
	stats := schema.MessageStats{}
	if viewer.UserType != schema.UserTypeCitizen && viewer.UserType != schema.UserTypeLawyer {
		return &stats, nil
	}

	base := scopeMessages(s.ormDB.Model(schema.Message{}), viewer)
	if err := base.Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}
	if err := base.Where("messages.is_read = ? AND messages.sender_id <> ?", false, viewer.ID).
		Count(&stats.Unread).Error; err != nil {
		return nil, err
	}
	if err := base.Where("messages.sender_id = ?", viewer.ID).Count(&stats.Sent).Error; err != nil {
		return nil, err
	}
	if err := base.Where("messages.sender_id <> ?", viewer.ID).Count(&stats.Received).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// threadRequest loads a case request and checks the viewer is one of its
// two parties.
func (s *QanoonStore) threadRequest(viewer *schema.User, caseRequestID uuid.UUID) (*schema.CaseRequest, error) {
	var request schema.CaseRequest
	if err := s.ormDB.Where("id = ?", caseRequestID).First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCaseRequestNotFound
		}
		return nil, err
	}

	if !participatesInThread(viewer, &request) {
		return nil, ErrThreadAccessDenied
	}
	return &request, nil
}
