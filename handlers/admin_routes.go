// handlers/admin_routes.go
package handlers

import (
	"time"

	"payu-draw-api/logger"
	"payu-draw-api/middleware"
	"payu-draw-api/models"
	"payu-draw-api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupAdminRoutes wires the X-Wallet-Address gated endpoints under /api/admin.
func SetupAdminRoutes(
	app *fiber.App,
	registrations *services.RegistrationService,
	tasks *services.TaskService,
	giveaway *services.GiveawayService,
	exports *services.ExportService,
	verifier middleware.AdminVerifier,
) {
	admin := app.Group("/api/admin", middleware.AdminOnlyMiddleware(verifier))

	admin.Get("/registrations", func(c *fiber.Ctx) error {
		if !registrations.Available() {
			return c.JSON(fiber.Map{
				"success": true,
				"data":    []models.Registration{},
			})
		}
		regs, err := registrations.ListAll()
		if err != nil {
			logger.Error("failed to list registrations", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list registrations",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    regs,
		})
	})

	admin.Get("/tasks", func(c *fiber.Ctx) error {
		if !tasks.Available() {
			return c.JSON(fiber.Map{
				"success": true,
				"data":    []models.TaskClick{},
			})
		}
		clicks, err := tasks.ListAll()
		if err != nil {
			logger.Error("failed to list task clicks", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list task clicks",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    clicks,
		})
	})

	admin.Post("/start-giveaway", func(c *fiber.Ctx) error {
		if !giveaway.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Database not available",
			})
		}
		setting, err := giveaway.Start(time.Now().UTC())
		if err != nil {
			logger.Error("failed to start giveaway", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to start giveaway",
				"cause": err.Error(),
			})
		}
		logger.Info("giveaway started", zap.Timep("start_time", setting.StartTime))
		return c.JSON(fiber.Map{
			"success":    true,
			"message":    "Giveaway started successfully",
			"start_time": setting.StartTime,
		})
	})

	admin.Get("/export", func(c *fiber.Ctx) error {
		if !exports.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Export not available",
			})
		}
		url, count, err := exports.ExportRegistrations()
		if err != nil {
			logger.Error("failed to export registrations", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to export registrations",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"url":     url,
			"count":   count,
		})
	})
}
