package database

import (
	"fmt"
	"log"

	"github.com/rekar-dev/warehouse-api/internal/config"
	"github.com/rekar-dev/warehouse-api/internal/domain/entity"
	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.Supplier{},
		&entity.Customer{},
		&entity.Purchase{},
		&entity.PurchaseItem{},
		&entity.Order{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (users, base categories)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Default users. Passwords can be overridden via environment variables.
	defaultUsers := []struct {
		username string
		password string
		fullName string
		role     enum.Role
	}{
		{
			username: "admin",
			password: viper.GetString("DEFAULT_ADMIN_PASSWORD"),
			fullName: "Administrator",
			role:     enum.RoleAdmin,
		},
		{
			username: "staff",
			password: viper.GetString("DEFAULT_STAFF_PASSWORD"),
			fullName: "Staff",
			role:     enum.RoleStaff,
		},
	}

	fallbackPasswords := map[string]string{
		"admin": "admin123",
		"staff": "staff123",
	}

	for _, u := range defaultUsers {
		var existing entity.User
		if err := db.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}

		password := u.password
		if password == "" {
			password = fallbackPasswords[u.username]
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", u.username, err)
			continue
		}

		user := entity.User{
			Username: u.username,
			Password: string(hashedPassword),
			FullName: u.fullName,
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to create user %s: %v", u.username, err)
		} else {
			log.Printf("Default user created: %s", u.username)
		}
	}

	// Base category so new products have somewhere to go
	var generalCategory entity.Category
	if err := db.Where("name = ?", "General").First(&generalCategory).Error; err != nil {
		generalCategory = entity.Category{Name: "General", Description: "Uncategorized products"}
		if err := db.Create(&generalCategory).Error; err != nil {
			log.Printf("Warning: failed to create default category: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
