package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// listLawyers is the public directory of verified lawyers, optionally
// filtered by ?city= substring and ?specialty= id.
func (s *Server) listLawyers(c *gin.Context) {
	var specialtyID *uuid.UUID
	if specialty := c.Query("specialty"); specialty != "" {
		id, err := uuid.Parse(specialty)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		specialtyID = &id
	}

	lawyers, err := s.store.ListVerifiedLawyers(c.Query("city"), specialtyID)
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, lawyers)
}

// lawyerStats is a public summary of the verified directory.
func (s *Server) lawyerStats(c *gin.Context) {
	stats, err := s.store.LawyerStats()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

// listSpecialties is a public read of all lawyer specialties.
func (s *Server) listSpecialties(c *gin.Context) {
	specialties, err := s.store.ListSpecialties()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, specialties)
}

// verifyLawyer marks a lawyer profile verified; admin only.
func (s *Server) verifyLawyer(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, err := uuid.Parse(c.Param("lawyerID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lawyer, err := s.store.VerifyLawyer(id, user.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lawyer verified successfully",
		"lawyer":  lawyer,
	})
}

// rejectLawyer removes a lawyer from the verified directory; admin only.
func (s *Server) rejectLawyer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("lawyerID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lawyer, err := s.store.UnverifyLawyer(id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lawyer verification removed",
		"lawyer":  lawyer,
	})
}
