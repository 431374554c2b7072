package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// createMessage appends a message to a request thread the viewer is a
// party on.
func (s *Server) createMessage(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		CaseRequest uuid.UUID `json:"case_request" binding:"required"`
		Content     string    `json:"content" binding:"required"`
		Attachment  string    `json:"attachment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.store.CreateMessage(user, params.CaseRequest, params.Content, params.Attachment)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// listMessages returns every message visible to the viewer without
// touching read flags.
func (s *Server) listMessages(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	messages, err := s.store.ListMessages(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, messages)
}

// listThread returns one thread oldest-first and marks the viewer's unread
// peer messages as read. Repeated calls report those messages as read.
func (s *Server) listThread(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	caseRequestID, err := uuid.Parse(c.Query("case_request_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	messages, err := s.store.ListThread(user, caseRequestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// unreadCount returns the viewer's unread peer-message count across all
// their threads.
func (s *Server) unreadCount(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	count, err := s.store.UnreadCount(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (s *Server) messageStats(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	stats, err := s.store.MessageStats(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}
