package workers

import (
	"fmt"
	"testing"
	"time"

	"payu-draw-api/models"
	"payu-draw-api/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSummaryWorkerStartsAndStops(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Registration{}, &models.TaskClick{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sched, err := StartSummaryWorker(
		services.NewRegistrationService(db),
		services.NewTaskService(db),
		time.Hour,
	)
	if err != nil {
		t.Fatalf("StartSummaryWorker failed: %v", err)
	}
	if err := sched.Shutdown(); err != nil {
		t.Fatalf("scheduler shutdown failed: %v", err)
	}
}
