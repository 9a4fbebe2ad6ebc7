package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "ojtms_backend/internals/features/users/auth/controller"
	authMiddleware "ojtms_backend/internals/middlewares/auth"
	middlewares "ojtms_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/logout", ctrl.Logout)
	grp.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
