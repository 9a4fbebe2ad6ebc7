package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ojtms_backend/internals/features/supervisors/model"
)

// FindSupervisorByUserID maps an authenticated user to their supervisor row.
func FindSupervisorByUserID(db *gorm.DB, userID uuid.UUID) (*model.TraineeSupervisorModel, error) {
	var sup model.TraineeSupervisorModel
	err := db.First(&sup, "supervisor_user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Supervisor profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load supervisor profile")
	}
	return &sup, nil
}

// EnsureActiveAssignment verifies the supervisor currently handles the
// student. Every record-level supervisor action goes through this gate.
func EnsureActiveAssignment(db *gorm.DB, supervisorID, studentID uuid.UUID) error {
	var assignment model.StudentSupervisorAssignmentModel
	err := db.
		Where("assignment_supervisor_id = ? AND assignment_student_id = ? AND assignment_status = ?",
			supervisorID, studentID, model.AssignmentActive).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusForbidden, "You are not assigned to this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify supervisor assignment")
	}
	return nil
}

// ListActiveStudentIDs returns the ids of all students the supervisor
// currently handles.
func ListActiveStudentIDs(db *gorm.DB, supervisorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.StudentSupervisorAssignmentModel{}).
		Where("assignment_supervisor_id = ? AND assignment_status = ?", supervisorID, model.AssignmentActive).
		Pluck("assignment_student_id", &ids).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assigned students")
	}
	return ids, nil
}
