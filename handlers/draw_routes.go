// handlers/draw_routes.go
package handlers

import (
	"payu-draw-api/logger"
	"payu-draw-api/models"
	"payu-draw-api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupDrawRoutes wires the public endpoints under /api. Every handler copes
// with an absent database: reads fall back to empty payloads, writes answer 503.
func SetupDrawRoutes(
	app *fiber.App,
	registrations *services.RegistrationService,
	tasks *services.TaskService,
	giveaway *services.GiveawayService,
	status *services.StatusService,
) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "PAYU Draw API - Squid Game Edition"})
	})

	api.Post("/status", func(c *fiber.Ctx) error {
		if !status.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Database not available",
			})
		}
		var req models.StatusCheckRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		check, err := status.Create(req.ClientName)
		if err != nil {
			logger.Error("failed to create status check", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create status check",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"id":          check.ID,
			"client_name": check.ClientName,
		})
	})

	api.Get("/status", func(c *fiber.Ctx) error {
		if !status.Available() {
			return c.JSON([]models.StatusCheck{})
		}
		checks, err := status.List()
		if err != nil {
			logger.Error("failed to list status checks", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list status checks",
				"cause": err.Error(),
			})
		}
		return c.JSON(checks)
	})

	api.Post("/save-ticket", func(c *fiber.Ctx) error {
		if !registrations.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Database not available",
			})
		}
		var req models.RegistrationRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		reg, created, err := registrations.SaveTicket(req)
		if err != nil {
			logger.Error("failed to save ticket", zap.String("wallet", req.Wallet), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save ticket",
				"cause": err.Error(),
			})
		}
		message := "Already registered"
		if created {
			message = "Registration saved"
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": message,
			"data":    reg,
		})
	})

	api.Get("/registration/:wallet", func(c *fiber.Ctx) error {
		if !registrations.Available() {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Database not available",
			})
		}
		reg, err := registrations.GetByWallet(c.Params("wallet"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(fiber.Map{
					"success": false,
					"message": "No registration found",
				})
			}
			logger.Error("failed to get registration", zap.String("wallet", c.Params("wallet")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get registration",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    reg,
		})
	})

	api.Post("/task-click", func(c *fiber.Ctx) error {
		if !tasks.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Database not available",
			})
		}
		var req models.TaskClickRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if _, err := tasks.LogClick(req); err != nil {
			logger.Error("failed to log task click", zap.String("wallet", req.Wallet), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to log task click",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Task click logged",
		})
	})

	api.Get("/tasks/:wallet", func(c *fiber.Ctx) error {
		if !tasks.Available() {
			return c.JSON(fiber.Map{
				"success": true,
				"data":    []models.TaskClick{},
			})
		}
		clicks, err := tasks.HistoryByWallet(c.Params("wallet"))
		if err != nil {
			logger.Error("failed to get task history", zap.String("wallet", c.Params("wallet")), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get task history",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    clicks,
		})
	})

	api.Get("/giveaway-status", func(c *fiber.Ctx) error {
		if !giveaway.Available() {
			return c.JSON(fiber.Map{
				"success":    true,
				"started":    false,
				"start_time": nil,
			})
		}
		setting, err := giveaway.Status()
		if err != nil {
			logger.Error("failed to get giveaway status", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get giveaway status",
				"cause": err.Error(),
			})
		}
		if setting == nil {
			return c.JSON(fiber.Map{
				"success":    true,
				"started":    false,
				"start_time": nil,
			})
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"started":    setting.Started,
			"start_time": setting.StartTime,
		})
	})
}
