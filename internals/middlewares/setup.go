package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ojtms_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth middleware is
// attached per route group, not globally.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
