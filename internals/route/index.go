package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employerRoute "ojtms_backend/internals/features/employers/route"
	attendanceRoute "ojtms_backend/internals/features/ojt/attendance/route"
	authRoute "ojtms_backend/internals/features/users/auth/route"
)

// SetupRoutes wires every feature group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	attendanceRoute.AttendanceRoutes(app, db)
	employerRoute.EmployerRoutes(app, db)
}
