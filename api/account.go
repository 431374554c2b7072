package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qanoon-assist/qanoon-api/store"
	"github.com/qanoon-assist/qanoon-api/utils"
)

// registerCitizen creates a citizen account with its profile.
func (s *Server) registerCitizen(c *gin.Context) {
	var params struct {
		Username    string     `json:"username" binding:"required"`
		Email       string     `json:"email" binding:"required,email"`
		Password    string     `json:"password" binding:"required,min=8"`
		FirstName   string     `json:"first_name"`
		LastName    string     `json:"last_name"`
		PhoneNumber string     `json:"phone_number"`
		Address     string     `json:"address"`
		City        string     `json:"city"`
		CNIC        string     `json:"cnic" binding:"required"`
		DateOfBirth *time.Time `json:"date_of_birth"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !utils.ValidCNIC(params.CNIC) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCNIC)
		return
	}

	user, err := s.store.CreateCitizen(store.CitizenRegistration{
		Username:    params.Username,
		Email:       params.Email,
		Password:    params.Password,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
		Address:     params.Address,
		City:        params.City,
		CNIC:        params.CNIC,
		DateOfBirth: params.DateOfBirth,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Citizen registered successfully",
		"user":    user,
	})
}

// registerLawyer creates a lawyer account. The profile stays unverified
// until an admin reviews it, so the lawyer does not appear in the public
// directory yet.
func (s *Server) registerLawyer(c *gin.Context) {
	var params struct {
		Username         string      `json:"username" binding:"required"`
		Email            string      `json:"email" binding:"required,email"`
		Password         string      `json:"password" binding:"required,min=8"`
		FirstName        string      `json:"first_name"`
		LastName         string      `json:"last_name"`
		PhoneNumber      string      `json:"phone_number"`
		BarCouncilNumber string      `json:"bar_council_number" binding:"required"`
		ExperienceYears  int         `json:"experience_years"`
		ConsultationFee  float64     `json:"consultation_fee"`
		Bio              string      `json:"bio"`
		City             string      `json:"city"`
		CNIC             string      `json:"cnic" binding:"required"`
		Address          string      `json:"address"`
		SpecialtyIDs     []uuid.UUID `json:"specialty_ids"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !utils.ValidCNIC(params.CNIC) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCNIC)
		return
	}

	user, err := s.store.CreateLawyer(store.LawyerRegistration{
		Username:         params.Username,
		Email:            params.Email,
		Password:         params.Password,
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		PhoneNumber:      params.PhoneNumber,
		BarCouncilNumber: params.BarCouncilNumber,
		ExperienceYears:  params.ExperienceYears,
		ConsultationFee:  params.ConsultationFee,
		Bio:              params.Bio,
		City:             params.City,
		CNIC:             params.CNIC,
		Address:          params.Address,
		SpecialtyIDs:     params.SpecialtyIDs,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Lawyer registered successfully! Your account is pending admin verification.",
		"user":    user,
	})
}

// currentUser returns the authenticated user with its role profile.
func (s *Server) currentUser(c *gin.Context) {
	user, ok := viewerFromContext(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, user)
}
