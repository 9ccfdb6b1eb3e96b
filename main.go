package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"payu-draw-api/handlers"
	"payu-draw-api/logger"
	"payu-draw-api/middleware"
	"payu-draw-api/models"
	"payu-draw-api/services"
	"payu-draw-api/utils"
	"payu-draw-api/workers"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// connectDatabase opens the pool and runs the idempotent migrations. A nil
// return means degraded mode: the process keeps serving, reads come back
// empty and writes answer 503. There is no retry; a failed pool stays unset
// for the life of the process.
func connectDatabase() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		logger.Warn("no database URL configured, running without persistence")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to access connection pool", zap.Error(err))
		return nil
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(10)

	if err := db.AutoMigrate(
		&models.Registration{},
		&models.TaskClick{},
		&models.GiveawaySettings{},
		&models.StatusCheck{},
	); err != nil {
		logger.Error("failed to migrate database", zap.Error(err))
		sqlDB.Close()
		return nil
	}

	logger.Info("database initialized")
	return db
}

func main() {
	envErr := godotenv.Load()

	logger.Initialize(logger.Configuration{
		Level:   os.Getenv("LOG_LEVEL"),
		Console: true,
	})
	if envErr != nil {
		logger.Warn("no .env file found, reading environment variables directly")
	}

	db := connectDatabase()

	app := fiber.New()

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	originsList := strings.Split(corsOrigins, ",")
	for i, origin := range originsList {
		originsList[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(originsList, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Wallet-Address",
	}))

	registrationService := services.NewRegistrationService(db)
	taskService := services.NewTaskService(db)
	giveawayService := services.NewGiveawayService(db)
	statusService := services.NewStatusService(db)
	exportService := services.NewExportService(db)

	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			logger.Warn("failed to initialize R2 client, exports disabled", zap.Error(err))
		}
	} else {
		logger.Warn("R2 not configured, exports disabled")
	}

	handlers.SetupDrawRoutes(app, registrationService, taskService, giveawayService, statusService)
	handlers.SetupAdminRoutes(app, registrationService, taskService, giveawayService, exportService, middleware.NewWalletVerifier())

	var summarySched gocron.Scheduler
	if minutes, _ := strconv.Atoi(os.Getenv("SUMMARY_INTERVAL_MINUTES")); minutes > 0 && db != nil {
		sched, err := workers.StartSummaryWorker(registrationService, taskService, time.Duration(minutes)*time.Minute)
		if err != nil {
			logger.Warn("failed to start summary worker", zap.Error(err))
		} else {
			summarySched = sched
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()
	logger.Info("server running", zap.String("port", port), zap.String("cors_origins", corsOrigins))

	<-ctx.Done()
	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("failed to shut down server", zap.Error(err))
	}
	if summarySched != nil {
		if err := summarySched.Shutdown(); err != nil {
			logger.Error("failed to shut down summary worker", zap.Error(err))
		}
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
