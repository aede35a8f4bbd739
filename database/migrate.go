package database

import (
	"fmt"

	"prizm_backend/internal/config"
	"prizm_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection. TranslateError is required
// so unique-index violations surface as gorm.ErrDuplicatedKey.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.InfluencerProfile{},
		&models.Campaign{},
		&models.Application{},
		&models.Message{},
		&models.Notification{},
		&models.Payment{},
		&models.BankAccount{},
		&models.Favorite{},
		&models.DebugReport{},
	)
}
