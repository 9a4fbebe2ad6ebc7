package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	helper "ojtms_backend/internals/helpers"

	internshipSvc "ojtms_backend/internals/features/internships/service"
	"ojtms_backend/internals/features/ojt/attendance/dto"
	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/attendance/service"
	"ojtms_backend/internals/features/ojt/schedule"
	studentModel "ojtms_backend/internals/features/students/model"
	supervisorModel "ojtms_backend/internals/features/supervisors/model"
	supervisorSvc "ojtms_backend/internals/features/supervisors/service"
)

type SupervisorRecordController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSupervisorRecordController(db *gorm.DB) *SupervisorRecordController {
	return &SupervisorRecordController{
		DB:       db,
		Validate: validator.New(),
	}
}

// GetAssignedStudents lists the students the supervisor currently handles.
func (ctrl *SupervisorRecordController) GetAssignedStudents(c *fiber.Ctx) error {
	sup, err := ctrl.currentSupervisor(c)
	if err != nil {
		return err
	}

	ids, err := supervisorSvc.ListActiveStudentIDs(ctrl.DB, sup.SupervisorID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return helper.JsonOK(c, "Assigned students fetched", []fiber.Map{})
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id IN ?", ids).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load assigned students")
	}

	items := make([]fiber.Map, 0, len(students))
	for i := range students {
		progress, err := buildProgress(ctrl.DB, &students[i])
		if err != nil {
			return err
		}
		items = append(items, fiber.Map{
			"student_id":      students[i].StudentID,
			"sr_code":         students[i].StudentSrCode,
			"full_name":       students[i].FullName(),
			"email":           students[i].StudentEmail,
			"program":         students[i].StudentProgram,
			"ojt_status":      progress.OJTStatus,
			"completed_hours": progress.CompletedHours,
			"required_hours":  progress.RequiredHours,
		})
	}

	return helper.JsonOK(c, "Assigned students fetched", items)
}

// GetStudentRecords returns a student's logs, newest first, optionally
// bounded by ?from= and ?to= (YYYY-MM-DD).
func (ctrl *SupervisorRecordController) GetStudentRecords(c *fiber.Ctx) error {
	sup, err := ctrl.currentSupervisor(c)
	if err != nil {
		return err
	}

	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	if err := supervisorSvc.EnsureActiveAssignment(ctrl.DB, sup.SupervisorID, studentID); err != nil {
		return err
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("timelog_student_id = ?", studentID)
	if from != nil {
		q = q.Where("timelog_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("timelog_date <= ?", *to)
	}

	var logs []model.TimeLogModel
	if err := q.Order("timelog_date DESC").Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student records")
	}

	ws := ctrl.scheduleForStudent(studentID)
	accByLog, err := accomplishmentsForLogs(ctrl.DB, logs)
	if err != nil {
		return err
	}

	items := make([]dto.TimeLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, dto.ToTimeLogResponse(&logs[i], accByLog[logs[i].TimelogID], service.ClassifyLog(logs[i], ws)))
	}

	return helper.JsonOK(c, "Student records fetched", items)
}

// ValidateRecord settles a submitted record. ?validation_status= must be
// approved, rejected, or complete; approved and complete both mark the
// clock status complete, rejected sends the record back to the student.
func (ctrl *SupervisorRecordController) ValidateRecord(c *fiber.Ctx) error {
	sup, err := ctrl.currentSupervisor(c)
	if err != nil {
		return err
	}

	logRow, err := ctrl.findRecord(c)
	if err != nil {
		return err
	}
	if err := supervisorSvc.EnsureActiveAssignment(ctrl.DB, sup.SupervisorID, logRow.TimelogStudentID); err != nil {
		return err
	}

	status := c.Query("validation_status")
	switch status {
	case "approved", "complete":
		logRow.TimelogStatus = model.StatusComplete
		logRow.TimelogWorkflowStatus = model.WorkflowApproved
	case "rejected":
		logRow.TimelogWorkflowStatus = model.WorkflowRejected
	default:
		return fiber.NewError(fiber.StatusBadRequest,
			"validation_status must be one of: approved, rejected, complete")
	}

	now := time.Now()
	logRow.TimelogValidatedAt = &now
	logRow.TimelogValidatedBy = &sup.SupervisorID

	if err := ctrl.DB.Save(logRow).Error; err != nil {
		log.Printf("[ATTENDANCE] record validation failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to validate record")
	}

	acc, _ := ctrl.findAccomplishment(logRow.TimelogID)
	return helper.JsonUpdated(c, "Record validated", dto.ToTimeLogResponse(logRow, acc, ""))
}

// UpdateRecord applies a supervisor correction: clock times, narrative
// text, remarks. Hours are recomputed from the corrected times, and edits
// after the record's date are flagged on the row.
func (ctrl *SupervisorRecordController) UpdateRecord(c *fiber.Ctx) error {
	sup, err := ctrl.currentSupervisor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	logRow, err := ctrl.findRecord(c)
	if err != nil {
		return err
	}
	if err := supervisorSvc.EnsureActiveAssignment(ctrl.DB, sup.SupervisorID, logRow.TimelogStudentID); err != nil {
		return err
	}

	if req.TimeIn != nil {
		logRow.TimelogTimeIn = req.TimeIn
	}
	if req.TimeOut != nil {
		logRow.TimelogTimeOut = req.TimeOut
	}
	if req.Remarks != nil {
		logRow.TimelogRemarks = req.Remarks
	}

	if logRow.TimelogTimeIn != nil && logRow.TimelogTimeOut != nil {
		ws := ctrl.scheduleForStudent(logRow.TimelogStudentID)
		hours := hoursWithin(ws, *logRow.TimelogTimeIn, *logRow.TimelogTimeOut)
		logRow.TimelogTotalHours = decimal.NewNullDecimal(hours)
		logRow.TimelogStatus = model.StatusComplete
	}

	if service.CalendarDate(time.Now()) > service.CalendarDate(logRow.TimelogDate) {
		logRow.TimelogModifiedAfterDate = true
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(logRow).Error; err != nil {
			return err
		}

		if req.Tasks == nil && req.Accomplishments == nil {
			return nil
		}

		var acc model.DailyAccomplishmentModel
		findErr := tx.First(&acc, "accomplishment_log_id = ?", logRow.TimelogID).Error
		if findErr != nil {
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			acc = model.DailyAccomplishmentModel{
				AccomplishmentLogID:     logRow.TimelogID,
				AccomplishmentStudentID: logRow.TimelogStudentID,
				AccomplishmentDate:      logRow.TimelogDate,
			}
		}
		if req.Tasks != nil {
			acc.AccomplishmentTasks = req.Tasks
		}
		if req.Accomplishments != nil {
			acc.AccomplishmentNotes = req.Accomplishments
		}
		return tx.Save(&acc).Error
	})
	if err != nil {
		log.Printf("[ATTENDANCE] record update failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update record")
	}

	acc, _ := ctrl.findAccomplishment(logRow.TimelogID)
	ws := ctrl.scheduleForStudent(logRow.TimelogStudentID)
	return helper.JsonUpdated(c, "Record updated", dto.ToTimeLogResponse(logRow, acc, service.ClassifyLog(*logRow, ws)))
}

/* ===============================
   Shared lookups
=================================*/

func (ctrl *SupervisorRecordController) currentSupervisor(c *fiber.Ctx) (*supervisorModel.TraineeSupervisorModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	sup, err := supervisorSvc.FindSupervisorByUserID(ctrl.DB, userID)
	if err != nil {
		return nil, err
	}
	return sup, nil
}

func (ctrl *SupervisorRecordController) findRecord(c *fiber.Ctx) (*model.TimeLogModel, error) {
	recordID, err := parseUUIDParam(c, "record_id")
	if err != nil {
		return nil, err
	}

	var row model.TimeLogModel
	if err := ctrl.DB.First(&row, "timelog_id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load record")
	}
	return &row, nil
}

func (ctrl *SupervisorRecordController) findAccomplishment(logID uuid.UUID) (*model.DailyAccomplishmentModel, error) {
	var acc model.DailyAccomplishmentModel
	err := ctrl.DB.First(&acc, "accomplishment_log_id = ?", logID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load accomplishment record")
	}
	return &acc, nil
}

func (ctrl *SupervisorRecordController) scheduleForStudent(studentID uuid.UUID) schedule.WorkSchedule {
	app, err := internshipSvc.FindAcceptedApplication(ctrl.DB, studentID)
	if err != nil {
		return nil
	}
	return internshipSvc.GetEmployerSchedule(ctrl.DB, app)
}

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be YYYY-MM-DD")
	}
	return &t, nil
}
