// Package db provides the GORM database connection for the application.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"task_backend/internal/config"
	authentity "task_backend/internal/feature/auth/domain/entity"
	taskentity "task_backend/internal/feature/tasks/domain/entity"
)

// Open connects to PostgreSQL using the injected configuration and ensures
// the schema exists. Table creation is idempotent: AutoMigrate is a no-op
// when the tables are already present.
func Open(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// users と tasks のスキーマを冪等に作成する
	if err := db.AutoMigrate(
		&authentity.User{},
		&taskentity.Task{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
