package services

import (
	"fmt"
	"testing"

	"payu-draw-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Shared cache so every pooled connection sees the same in-memory
	// database; with a plain ":memory:" DSN each connection gets its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Registration{},
		&models.TaskClick{},
		&models.GiveawaySettings{},
		&models.StatusCheck{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
