package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	employerModel "ojtms_backend/internals/features/employers/model"
	"ojtms_backend/internals/features/internships/model"
	"ojtms_backend/internals/features/ojt/schedule"
)

// FindAcceptedApplication returns the student's accepted application, if any.
// Attendance actions require one.
func FindAcceptedApplication(db *gorm.DB, studentID uuid.UUID) (*model.InternshipApplicationModel, error) {
	var app model.InternshipApplicationModel
	err := db.
		Where("application_student_id = ? AND application_status = ?", studentID, model.ApplicationAccepted).
		Order("application_applied_at DESC").
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No accepted internship application found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load internship application")
	}
	return &app, nil
}

// GetEmployerSchedule resolves the work schedule of the employer behind an
// accepted application. Returns nil (no schedule) when the internship or
// employer row is missing, or when the stored JSON cannot be parsed; the
// caller falls back to the default working window.
func GetEmployerSchedule(db *gorm.DB, app *model.InternshipApplicationModel) schedule.WorkSchedule {
	if app == nil {
		return nil
	}

	var internship model.InternshipModel
	if err := db.First(&internship, "internship_id = ?", app.ApplicationInternshipID).Error; err != nil {
		return nil
	}

	var employer employerModel.EmployerModel
	if err := db.First(&employer, "employer_id = ?", internship.InternshipEmployerID).Error; err != nil {
		return nil
	}

	if len(employer.EmployerWorkSchedule) == 0 {
		return nil
	}
	return schedule.ParseLenient([]byte(employer.EmployerWorkSchedule))
}
