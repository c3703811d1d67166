package database

import (
	"errors"
	"fmt"
	"time"

	"ai-act-tracker/internal/config"
	"ai-act-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// retryDelay is the pause between connection attempts.
var retryDelay = 2 * time.Second

// Init connects, migrates and seeds the default organization and admin,
// then stores the handle in DB.
func Init(cfg *config.Config) error {
	db, err := Open(cfg.DBDSN, cfg.DBConnectAttempts)
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	if err := seedAdmin(db, cfg); err != nil {
		// the app still works without a seeded admin
		log.Error().Err(err).Msg("failed to seed default admin")
	}
	DB = db
	return nil
}

// Open connects to Postgres, retrying while the database comes up.
func Open(dsn string, attempts int) (*gorm.DB, error) {
	if attempts < 1 {
		attempts = 1
	}
	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		log.Info().Int("attempt", i).Int("max_attempts", attempts).Msg("connecting to database")

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: NewGormLogger(200 * time.Millisecond)})
		if err == nil {
			log.Info().Msg("connected to database")
			return db, nil
		}

		log.Warn().Err(err).Msg("database connection failed")
		if i < attempts {
			time.Sleep(retryDelay)
		}
	}
	return nil, fmt.Errorf("connect to db after %d attempts: %w", attempts, err)
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.AISystem{},
		&models.GapAssessment{},
		&models.Requirement{},
		&models.RiskRegister{},
		&models.Risk{},
		&models.MitigationAction{},
		&models.TechnicalDocumentation{},
		&models.GovernanceStructure{},
		&models.GovernanceRole{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// seedAdmin creates the default organization and its admin once. Without
// ADMIN_PASSWORD a random password is generated and logged a single time.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	var org models.Organization
	err := db.Where("name = ?", cfg.AdminOrganization).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		org = models.Organization{Name: cfg.AdminOrganization}
		err = db.Create(&org).Error
	}
	if err != nil {
		return fmt.Errorf("default organization: %w", err)
	}

	password := cfg.AdminPassword
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		OrganizationID: org.ID,
		Username:       cfg.AdminUsername,
		PasswordHash:   string(hash),
		Role:           models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	if generated {
		log.Warn().
			Str("username", admin.Username).
			Str("organization", org.Name).
			Str("password", password).
			Msg("created default admin user with generated password")
		return nil
	}
	log.Info().Str("username", admin.Username).Str("organization", org.Name).Msg("created default admin user")
	return nil
}
