// Package routes defines the API routing configuration. It wires the store,
// cache, and fee service together and groups routes behind the auth
// middleware.
package routes

import (
	"paygrid/internal/handlers"
	"paygrid/internal/middleware"
	"paygrid/internal/repositories"
	"paygrid/internal/services/fees"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	store := repositories.NewStore(repositories.DB)
	feeService := fees.NewService(store, repositories.CacheService, fees.Config{})
	feeHandler := handlers.NewFeeHandler(feeService)

	api := app.Group("/api/v1", middleware.Auth())

	// Merchant-scoped fee configuration
	api.Get("/merchants/:id/fees", feeHandler.GetMerchantFees)
	api.Put("/merchants/:id/fees", feeHandler.UpdateMerchantFees)
	api.Post("/merchants/:id/fees/reset-to-defaults", feeHandler.ResetMerchantFees)

	// Platform-wide tier defaults
	api.Get("/config/fees/defaults", feeHandler.GetPlatformFeeDefaults)
	api.Put("/config/fees/defaults", middleware.AdminOnly, feeHandler.UpdatePlatformFeeDefaults)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
