package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/qanoon-assist/qanoon-api/schema"
)

var testDBSeq int64

// openTestDB opens a fresh in-memory database with the full schema
// migrated. Every call returns an isolated database.
func openTestDB(t *testing.T) *gorm.DB {
	name := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open("sqlite3", name)
	if err != nil {
		t.Fatalf("open test database with error: %s", err)
	}
	db.DB().SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.CitizenProfile{},
		&schema.LawyerSpecialty{},
		&schema.LawyerProfile{},
		&schema.AdminProfile{},
		&schema.CaseRequest{},
		&schema.Case{},
		&schema.Hearing{},
		&schema.CaseUpdate{},
		&schema.Message{},
		&schema.LegalCategory{},
		&schema.LegalArticle{},
	).Error; err != nil {
		t.Fatalf("migrate test database with error: %s", err)
	}

	return db
}

func fixtureCitizen(t *testing.T, db *gorm.DB, username, cnic string) *schema.User {
	user := schema.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		FirstName:    "Citizen",
		LastName:     username,
		UserType:     schema.UserTypeCitizen,
	}
	profile := schema.CitizenProfile{
		ID:     uuid.New(),
		UserID: user.ID,
		City:   "Lahore",
		CNIC:   cnic,
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create citizen fixture with error: %s", err)
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create citizen profile fixture with error: %s", err)
	}

	user.CitizenProfile = &profile
	return &user
}

func fixtureLawyer(t *testing.T, db *gorm.DB, username, barNumber string) *schema.User {
	user := schema.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		FirstName:    "Lawyer",
		LastName:     username,
		UserType:     schema.UserTypeLawyer,
	}
	profile := schema.LawyerProfile{
		ID:               uuid.New(),
		UserID:           user.ID,
		BarCouncilNumber: barNumber,
		City:             "Lahore",
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create lawyer fixture with error: %s", err)
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create lawyer profile fixture with error: %s", err)
	}

	user.LawyerProfile = &profile
	return &user
}

func fixtureAdmin(t *testing.T, db *gorm.DB, username string) *schema.User {
	user := schema.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		FirstName:    "Admin",
		LastName:     username,
		UserType:     schema.UserTypeAdmin,
	}
	profile := schema.AdminProfile{
		ID:         uuid.New(),
		UserID:     user.ID,
		EmployeeID: "EMP-" + username,
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create admin fixture with error: %s", err)
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create admin profile fixture with error: %s", err)
	}

	user.AdminProfile = &profile
	return &user
}
