package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/qanoon-assist/qanoon-api/schema"
)

type UserTestSuite struct {
	suite.Suite

	db    *gorm.DB
	store *QanoonStore
}

func (s *UserTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.store = NewQanoonStore(s.db)
}

func (s *UserTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *UserTestSuite) TestCreateCitizen() {
	user, err := s.store.CreateCitizen(CitizenRegistration{
		Username:  "ayesha",
		Email:     "ayesha@example.com",
		Password:  "s3cret-passphrase",
		FirstName: "Ayesha",
		LastName:  "Khan",
		City:      "Lahore",
		CNIC:      "35202-1111111-1",
	})
	s.Require().NoError(err)
	s.Equal(schema.UserTypeCitizen, user.UserType)
	s.Require().NotNil(user.CitizenProfile)
	s.Equal("35202-1111111-1", user.CitizenProfile.CNIC)

	// the password is stored hashed, never as given
	s.NotEqual("s3cret-passphrase", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-passphrase")))

	loaded, err := s.store.GetUserByUsername("ayesha")
	s.Require().NoError(err)
	s.Require().NotNil(loaded.CitizenProfile)
	s.Equal(user.ID, loaded.ID)
}

func (s *UserTestSuite) TestCreateLawyerWithSpecialties() {
	criminal := schema.LawyerSpecialty{ID: uuid.New(), Name: "Criminal Law"}
	family := schema.LawyerSpecialty{ID: uuid.New(), Name: "Family Law"}
	s.Require().NoError(s.db.Create(&criminal).Error)
	s.Require().NoError(s.db.Create(&family).Error)

	user, err := s.store.CreateLawyer(LawyerRegistration{
		Username:         "bilal",
		Email:            "bilal@example.com",
		Password:         "s3cret-passphrase",
		FirstName:        "Bilal",
		LastName:         "Ahmed",
		BarCouncilNumber: "PB-1001",
		ExperienceYears:  8,
		City:             "Lahore",
		SpecialtyIDs:     []uuid.UUID{criminal.ID},
	})
	s.Require().NoError(err)
	s.Equal(schema.UserTypeLawyer, user.UserType)
	s.Require().NotNil(user.LawyerProfile)

	// a fresh lawyer is not in the public directory yet
	s.False(user.LawyerProfile.IsVerified)
	s.Require().Len(user.LawyerProfile.Specialties, 1)
	s.Equal("Criminal Law", user.LawyerProfile.Specialties[0].Name)

	loaded, err := s.store.GetUser(user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(loaded.LawyerProfile)
	s.Len(loaded.LawyerProfile.Specialties, 1)
}

func (s *UserTestSuite) TestGetUserNotFound() {
	_, err := s.store.GetUser(uuid.New())
	s.Equal(ErrUserNotFound, err)

	_, err = s.store.GetUserByUsername("nobody")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserTestSuite) TestVerificationCycle() {
	lawyer := fixtureLawyer(s.T(), s.db, "bilal", "PB-1001")
	admin := fixtureAdmin(s.T(), s.db, "nadia")

	pending, err := s.store.ListUnverifiedLawyers()
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	verified, err := s.store.VerifyLawyer(lawyer.LawyerProfile.ID, admin.ID)
	s.Require().NoError(err)
	s.True(verified.IsVerified)
	s.NotNil(verified.VerificationDate)
	s.Require().NotNil(verified.VerifiedByID)
	s.Equal(admin.ID, *verified.VerifiedByID)

	pending, err = s.store.ListUnverifiedLawyers()
	s.Require().NoError(err)
	s.Len(pending, 0)

	directory, err := s.store.ListVerifiedLawyers("", nil)
	s.Require().NoError(err)
	s.Len(directory, 1)

	unverified, err := s.store.UnverifyLawyer(lawyer.LawyerProfile.ID)
	s.Require().NoError(err)
	s.False(unverified.IsVerified)
	s.Nil(unverified.VerificationDate)
	s.Nil(unverified.VerifiedByID)

	_, err = s.store.VerifyLawyer(uuid.New(), admin.ID)
	s.Equal(ErrLawyerNotFound, err)
}

func (s *UserTestSuite) TestDirectoryFilters() {
	admin := fixtureAdmin(s.T(), s.db, "nadia")

	criminal := schema.LawyerSpecialty{ID: uuid.New(), Name: "Criminal Law"}
	s.Require().NoError(s.db.Create(&criminal).Error)

	lahore := fixtureLawyer(s.T(), s.db, "bilal", "PB-1001")
	karachi := fixtureLawyer(s.T(), s.db, "dawood", "SB-2001")
	s.Require().NoError(s.db.Model(karachi.LawyerProfile).Update("city", "Karachi").Error)
	s.Require().NoError(s.db.Model(lahore.LawyerProfile).
		Association("Specialties").Append(criminal).Error)

	for _, l := range []*schema.User{lahore, karachi} {
		_, err := s.store.VerifyLawyer(l.LawyerProfile.ID, admin.ID)
		s.Require().NoError(err)
	}

	// city matching is a case-insensitive substring
	directory, err := s.store.ListVerifiedLawyers("LAHO", nil)
	s.Require().NoError(err)
	s.Require().Len(directory, 1)
	s.Equal("Lahore", directory[0].City)

	directory, err = s.store.ListVerifiedLawyers("", &criminal.ID)
	s.Require().NoError(err)
	s.Require().Len(directory, 1)
	s.Equal(lahore.LawyerProfile.ID, directory[0].ID)

	directory, err = s.store.ListVerifiedLawyers("", nil)
	s.Require().NoError(err)
	s.Len(directory, 2)
}

func (s *UserTestSuite) TestLawyerStats() {
	admin := fixtureAdmin(s.T(), s.db, "nadia")

	lahore := fixtureLawyer(s.T(), s.db, "bilal", "PB-1001")
	karachi := fixtureLawyer(s.T(), s.db, "dawood", "SB-2001")
	fixtureLawyer(s.T(), s.db, "ehsan", "PB-1003")
	s.Require().NoError(s.db.Model(karachi.LawyerProfile).Update("city", "Karachi").Error)

	for _, l := range []*schema.User{lahore, karachi} {
		_, err := s.store.VerifyLawyer(l.LawyerProfile.ID, admin.ID)
		s.Require().NoError(err)
	}

	stats, err := s.store.LawyerStats()
	s.Require().NoError(err)

	// unverified lawyers stay out of every count
	s.Equal(2, stats.TotalVerified)
	s.Equal(1, stats.KarachiLawyers)
	s.Equal(1, stats.LahoreLawyers)
	s.Equal(0, stats.IslamabadLawyers)
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
