package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtms_backend/internals/constants"
	employerController "ojtms_backend/internals/features/employers/controller"
	authMiddleware "ojtms_backend/internals/middlewares/auth"
)

func EmployerRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := employerController.NewEmployerController(db)

	grp := app.Group("/api/employer",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("the employer profile"), constants.RoleEmployer),
	)
	grp.Get("/profile", ctrl.GetProfile)
	grp.Put("/profile", ctrl.UpdateProfile)
}
