package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/qanoon-assist/qanoon-api/schema"
)

var (
	ErrUserNotFound   = fmt.Errorf("the user does not exist")
	ErrLawyerNotFound = fmt.Errorf("the lawyer does not exist")
	ErrUserTaken      = fmt.Errorf("the username, email, or CNIC has already been registered")
)

// CitizenRegistration carries the fields of a citizen sign-up.
type CitizenRegistration struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	City        string
	CNIC        string
	DateOfBirth *time.Time
}

// LawyerRegistration carries the fields of a lawyer sign-up. The resulting
// profile starts unverified and stays out of the public directory until an
// admin verifies it.
type LawyerRegistration struct {
	Username         string
	Email            string
	Password         string
	FirstName        string
	LastName         string
	PhoneNumber      string
	BarCouncilNumber string
	ExperienceYears  int
	ConsultationFee  float64
	Bio              string
	City             string
	CNIC             string
	Address          string
	SpecialtyIDs     []uuid.UUID
}

// CreateCitizen registers a citizen account and its profile atomically.
func (s *QanoonStore) CreateCitizen(params CitizenRegistration) (*schema.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := schema.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		UserType:     schema.UserTypeCitizen,
		PhoneNumber:  params.PhoneNumber,
	}
	profile := schema.CitizenProfile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Address:     params.Address,
		City:        params.City,
		CNIC:        params.CNIC,
		DateOfBirth: params.DateOfBirth,
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return nil, translateUniqueViolation(err)
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return nil, translateUniqueViolation(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	user.CitizenProfile = &profile
	return &user, nil
}

// CreateLawyer registers a lawyer account, its profile, and its specialty
// links atomically.
func (s *QanoonStore) CreateLawyer(params LawyerRegistration) (*schema.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := schema.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		UserType:     schema.UserTypeLawyer,
		PhoneNumber:  params.PhoneNumber,
	}
	profile := schema.LawyerProfile{
		ID:               uuid.New(),
		UserID:           user.ID,
		BarCouncilNumber: params.BarCouncilNumber,
		ExperienceYears:  params.ExperienceYears,
		ConsultationFee:  params.ConsultationFee,
		Bio:              params.Bio,
		City:             params.City,
		CNIC:             params.CNIC,
		Address:          params.Address,
	}

	specialties := []schema.LawyerSpecialty{}
	if len(params.SpecialtyIDs) > 0 {
		if err := s.ormDB.Where("id in (?)", params.SpecialtyIDs).Find(&specialties).Error; err != nil {
			return nil, err
		}
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return nil, translateUniqueViolation(err)
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return nil, translateUniqueViolation(err)
	}
	if len(specialties) > 0 {
		if err := tx.Model(&profile).Association("Specialties").Append(specialties).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	profile.Specialties = specialties
	user.LawyerProfile = &profile
	return &user, nil
}

// GetUser returns a user with its role profile preloaded.
func (s *QanoonStore) GetUser(id uuid.UUID) (*schema.User, error) {
	var user schema.User
	query := s.ormDB.
		Preload("CitizenProfile").
		Preload("LawyerProfile.Specialties").
		Preload("AdminProfile").
		Where("id = ?", id)
	if err := query.First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns a user with its role profile preloaded.
func (s *QanoonStore) GetUserByUsername(username string) (*schema.User, error) {
	var user schema.User
	query := s.ormDB.
		Preload("CitizenProfile").
		Preload("LawyerProfile.Specialties").
		Preload("AdminProfile").
		Where("username = ?", username)
	if err := query.First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListSpecialties returns all lawyer specialties ordered by name.
func (s *QanoonStore) ListSpecialties() ([]schema.LawyerSpecialty, error) {
	specialties := []schema.LawyerSpecialty{}
	if err := s.ormDB.Order("name ASC").Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

// ListVerifiedLawyers returns the public lawyer directory, optionally
// filtered by city substring and specialty.
func (s *QanoonStore) ListVerifiedLawyers(city string, specialtyID *uuid.UUID) ([]schema.LawyerProfile, error) {
	lawyers := []schema.LawyerProfile{}
	query := s.ormDB.
		Preload("User").
		Preload("Specialties").
		Where("lawyer_profiles.is_verified = ?", true)

	if city != "" {
		query = query.Where("LOWER(lawyer_profiles.city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if specialtyID != nil {
		query = query.
			Joins("JOIN lawyer_specialty_link ON lawyer_specialty_link.lawyer_profile_id = lawyer_profiles.id").
			Where("lawyer_specialty_link.lawyer_specialty_id = ?", *specialtyID)
	}

	if err := query.Order("lawyer_profiles.created_at DESC").Find(&lawyers).Error; err != nil {
		return nil, err
	}
	return lawyers, nil
}

// ListUnverifiedLawyers returns lawyers awaiting admin verification.
func (s *QanoonStore) ListUnverifiedLawyers() ([]schema.LawyerProfile, error) {
	lawyers := []schema.LawyerProfile{}
	query := s.ormDB.
		Preload("User").
		Preload("Specialties").
		Where("is_verified = ?", false).
		Order("created_at DESC")
	if err := query.Find(&lawyers).Error; err != nil {
		return nil, err
	}
	return lawyers, nil
}

// LawyerStats counts verified lawyers overall and in the major cities.
type LawyerStats struct {
	TotalVerified    int `json:"total_verified"`
	KarachiLawyers   int `json:"karachi_lawyers"`
	LahoreLawyers    int `json:"lahore_lawyers"`
	IslamabadLawyers int `json:"islamabad_lawyers"`
}

// LawyerStats summarizes the verified directory. Public, like the
// directory itself.
func (s *QanoonStore) LawyerStats() (*LawyerStats, error) {
	stats := LawyerStats{}

	base := s.ormDB.Model(schema.LawyerProfile{}).Where("is_verified = ?", true)
	if err := base.Count(&stats.TotalVerified).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		city   string
		target *int
	}{
		{"Karachi", &stats.KarachiLawyers},
		{"Lahore", &stats.LahoreLawyers},
		{"Islamabad", &stats.IslamabadLawyers},
	}
	for _, c := range counts {
		if err := base.Where("city = ?", c.city).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// VerifyLawyer marks a lawyer profile verified, recording when and by whom.
func (s *QanoonStore) VerifyLawyer(lawyerID, verifiedBy uuid.UUID) (*schema.LawyerProfile, error) {
	lawyer, err := s.lawyerByID(lawyerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_verified":       true,
		"verification_date": now,
		"verified_by_id":    verifiedBy,
	}
	if err := s.ormDB.Model(lawyer).Updates(updates).Error; err != nil {
		return nil, err
	}

	lawyer.IsVerified = true
	lawyer.VerificationDate = &now
	lawyer.VerifiedByID = &verifiedBy
	return lawyer, nil
}

// UnverifyLawyer removes a lawyer from the verified directory.
func (s *QanoonStore) UnverifyLawyer(lawyerID uuid.UUID) (*schema.LawyerProfile, error) {
	lawyer, err := s.lawyerByID(lawyerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"is_verified":       false,
		"verification_date": nil,
		"verified_by_id":    nil,
	}
	if err := s.ormDB.Model(lawyer).Updates(updates).Error; err != nil {
		return nil, err
	}

	lawyer.IsVerified = false
	lawyer.VerificationDate = nil
	lawyer.VerifiedByID = nil
	return lawyer, nil
}

func (s *QanoonStore) lawyerByID(id uuid.UUID) (*schema.LawyerProfile, error) {
	var lawyer schema.LawyerProfile
	if err := s.ormDB.Preload("User").Where("id = ?", id).First(&lawyer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return &lawyer, nil
}

func translateUniqueViolation(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrUserTaken
	}
	return err
}
