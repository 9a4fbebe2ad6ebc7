package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtms_backend/internals/constants"
	attendanceController "ojtms_backend/internals/features/ojt/attendance/controller"
	middlewares "ojtms_backend/internals/middlewares"
	authMiddleware "ojtms_backend/internals/middlewares/auth"
)

// AttendanceRoutes registers the student clock cycle and the supervisor
// validation surface.
func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	studentCtrl := attendanceController.NewAttendanceController(db)
	supervisorCtrl := attendanceController.NewSupervisorRecordController(db)

	student := app.Group("/api/oeams",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("attendance"), constants.RoleStudent),
	)
	student.Post("/time-in", middlewares.ClockActionRateLimiter(), studentCtrl.TimeIn)
	student.Post("/time-out", middlewares.ClockActionRateLimiter(), studentCtrl.TimeOut)
	student.Post("/save-accomplishments", studentCtrl.SaveAccomplishments)
	student.Post("/submit-today", studentCtrl.SubmitToday)
	student.Get("/today", studentCtrl.GetToday)
	student.Get("/logs", studentCtrl.GetLogs)
	student.Get("/history", studentCtrl.GetHistory)
	student.Get("/progress", studentCtrl.GetProgress)

	supervisor := app.Group("/api/supervisor",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("record validation"), constants.RoleSupervisor),
	)
	supervisor.Get("/students", supervisorCtrl.GetAssignedStudents)
	supervisor.Get("/students/:student_id/records", supervisorCtrl.GetStudentRecords)
	supervisor.Put("/records/:record_id/validate", supervisorCtrl.ValidateRecord)
	supervisor.Put("/records/:record_id/update", supervisorCtrl.UpdateRecord)

	// coordinators, the OJT head, and supervisors can read any student's
	// progress; students reach their own through /api/oeams/progress
	progress := app.Group("/api/students",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("student progress"),
			constants.RoleSupervisor, constants.RoleCoordinator, constants.RoleOJTHead, constants.RoleSuperadmin),
	)
	progress.Get("/:student_id/progress", studentCtrl.GetProgressByStudentID)
}
