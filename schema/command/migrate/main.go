package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/qanoon-assist/qanoon-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("qanoon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS qanoon`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO qanoon").Error; err != nil {
		panic(err)
	}

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
		panic(err)
	}
}
