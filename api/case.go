package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qanoon-assist/qanoon-api/schema"
	"github.com/qanoon-assist/qanoon-api/store"
)

// listCases returns the viewer's cases with hearings and updates.
func (s *Server) listCases(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	cases, err := s.store.ListCases(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, cases)
}

func (s *Server) getCase(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, err := uuid.Parse(c.Param("caseID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	record, err := s.store.GetCase(user, id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// createHearing schedules a hearing; lawyer only.
func (s *Server) createHearing(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if user.UserType != schema.UserTypeLawyer {
		abortWithEncoding(c, http.StatusForbidden, errorLawyerOnly)
		return
	}

	var params struct {
		Case        uuid.UUID  `json:"case" binding:"required"`
		Title       string     `json:"title"`
		HearingDate time.Time  `json:"hearing_date" binding:"required"`
		Location    string     `json:"location"`
		Notes       string     `json:"notes"`
		NextDate    *time.Time `json:"next_date"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	hearing, err := s.store.CreateHearing(user, store.HearingParams{
		CaseID:      params.Case,
		Title:       params.Title,
		HearingDate: params.HearingDate,
		Location:    params.Location,
		Notes:       params.Notes,
		NextDate:    params.NextDate,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hearing)
}

func (s *Server) listHearings(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	hearings, err := s.store.ListHearings(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, hearings)
}

// createCaseUpdate records a progress note; lawyer only.
func (s *Server) createCaseUpdate(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if user.UserType != schema.UserTypeLawyer {
		abortWithEncoding(c, http.StatusForbidden, errorLawyerOnly)
		return
	}

	var params struct {
		Case        uuid.UUID `json:"case" binding:"required"`
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	update, err := s.store.CreateCaseUpdate(user, store.CaseUpdateParams{
		CaseID:      params.Case,
		Title:       params.Title,
		Description: params.Description,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, update)
}

func (s *Server) listCaseUpdates(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	updates, err := s.store.ListCaseUpdates(user)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, updates)
}
