package repositories

import (
	"errors"
	"fmt"
	"log"

	"github.com/rohits-web03/postdev/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the postgres connection and runs migrations.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DB_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates the tables backing users and posts.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
