package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qanoon-assist/qanoon-api/schema"
	"github.com/qanoon-assist/qanoon-api/store"
)

// createCaseRequest files a request from the authenticated citizen to a
// lawyer.
func (s *Server) createCaseRequest(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if user.UserType != schema.UserTypeCitizen {
		abortWithEncoding(c, http.StatusForbidden, errorCitizenOnly)
		return
	}

	var params struct {
		Lawyer      uuid.UUID `json:"lawyer" binding:"required"`
		CaseTitle   string    `json:"case_title" binding:"required"`
		CaseType    string    `json:"case_type"`
		Description string    `json:"description"`
		Urgency     string    `json:"urgency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Urgency != "" && !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.store.CreateCaseRequest(user, store.CaseRequestParams{
		LawyerID:    params.Lawyer,
		CaseTitle:   params.CaseTitle,
		CaseType:    params.CaseType,
		Description: params.Description,
		Urgency:     params.Urgency,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Case request sent successfully!",
		"data":    request,
	})
}

// listCaseRequests returns the viewer's requests, role-scoped.
func (s *Server) listCaseRequests(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requests, err := s.store.ListCaseRequests(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

// transition runs one lawyer-side lifecycle step identified by the route.
func (s *Server) transition(c *gin.Context, run func(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error), message string) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := run(user, id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    request,
	})
}

func (s *Server) acceptCaseRequest(c *gin.Context) {
	var params struct {
		Message string `json:"message"`
	}
	// The body is optional; accept without a note is fine.
	_ = c.ShouldBindJSON(&params)

	s.transition(c, func(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
		return s.store.AcceptCaseRequest(viewer, id, params.Message)
	}, "Case request accepted")
}

func (s *Server) rejectCaseRequest(c *gin.Context) {
	var params struct {
		Message string `json:"message"`
	}
	_ = c.ShouldBindJSON(&params)

	s.transition(c, func(viewer *schema.User, id uuid.UUID) (*schema.CaseRequest, error) {
		return s.store.RejectCaseRequest(viewer, id, params.Message)
	}, "Case request rejected")
}

func (s *Server) startCaseProgress(c *gin.Context) {
	s.transition(c, s.store.StartCaseProgress, "Case status updated to in progress")
}

func (s *Server) completeCaseRequest(c *gin.Context) {
	s.transition(c, s.store.CompleteCaseRequest, "Case marked as completed")
}

// markCaseRequestViewed stamps last_viewed_at for the requesting citizen.
func (s *Server) markCaseRequestViewed(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.store.MarkCaseRequestViewed(user, id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Case marked as viewed",
		"last_viewed_at": request.LastViewedAt,
	})
}

// caseRequestStats returns the viewer's request counts by status.
func (s *Server) caseRequestStats(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	stats, err := s.store.CaseRequestStats(user)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
