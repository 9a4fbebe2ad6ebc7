package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	helper "ojtms_backend/internals/helpers"

	internshipModel "ojtms_backend/internals/features/internships/model"
	internshipSvc "ojtms_backend/internals/features/internships/service"
	"ojtms_backend/internals/features/ojt/attendance/dto"
	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/attendance/service"
	"ojtms_backend/internals/features/ojt/schedule"
	studentModel "ojtms_backend/internals/features/students/model"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* ===============================
   Clock actions
=================================*/

// TimeIn opens today's attendance record. The unique index on
// (student, date) backstops concurrent double-clicks: a 23505 from the
// insert is reported the same way as a pre-checked duplicate.
func (ctrl *AttendanceController) TimeIn(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	app, err := internshipSvc.FindAcceptedApplication(ctrl.DB, student.StudentID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := service.EnsureOJTStarted(app.ApplicationOJTStartDate, now); err != nil {
		return err
	}

	ws := internshipSvc.GetEmployerSchedule(ctrl.DB, app)
	if err := service.EnsureWorkingDay(ws, now); err != nil {
		return err
	}

	today := service.DateOnly(now)
	existing, err := ctrl.findLogByDate(student.StudentID, today)
	if err != nil {
		return err
	}
	if err := service.CanTimeIn(existing); err != nil {
		return err
	}

	timeIn := now
	newLog := model.TimeLogModel{
		TimelogStudentID:      student.StudentID,
		TimelogApplicationID:  app.ApplicationID,
		TimelogDate:           today,
		TimelogTimeIn:         &timeIn,
		TimelogStatus:         model.StatusIncomplete,
		TimelogWorkflowStatus: model.WorkflowDraft,
	}

	if err := ctrl.DB.Create(&newLog).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Already timed in today")
		}
		log.Printf("[ATTENDANCE] time-in insert failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record time in")
	}

	warning := service.ClassifyLog(newLog, ws)
	return helper.JsonCreated(c, "Time in recorded", dto.ToTimeLogResponse(&newLog, nil, warning))
}

// TimeOut closes today's record and stores the validated hours.
func (ctrl *AttendanceController) TimeOut(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	now := time.Now()
	today := service.DateOnly(now)
	logRow, err := ctrl.findLogByDate(student.StudentID, today)
	if err != nil {
		return err
	}
	if err := service.CanTimeOut(logRow); err != nil {
		return err
	}

	app, err := internshipSvc.FindAcceptedApplication(ctrl.DB, student.StudentID)
	if err != nil {
		return err
	}
	ws := internshipSvc.GetEmployerSchedule(ctrl.DB, app)

	timeOut := now
	hours := hoursWithin(ws, *logRow.TimelogTimeIn, timeOut)

	logRow.TimelogTimeOut = &timeOut
	logRow.TimelogTotalHours = decimal.NewNullDecimal(hours)
	logRow.TimelogStatus = model.StatusComplete

	if err := ctrl.DB.Save(logRow).Error; err != nil {
		log.Printf("[ATTENDANCE] time-out update failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record time out")
	}

	acc, _ := ctrl.findAccomplishment(logRow.TimelogID)
	warning := service.ClassifyLog(*logRow, ws)
	return helper.JsonUpdated(c, "Time out recorded", dto.ToTimeLogResponse(logRow, acc, warning))
}

/* ===============================
   Daily narrative
=================================*/

// SaveAccomplishments upserts today's task/accomplishment text. Requires
// an open time-in so the narrative always hangs off a real log row.
func (ctrl *AttendanceController) SaveAccomplishments(c *fiber.Ctx) error {
	var req dto.SaveAccomplishmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	today := service.DateOnly(time.Now())
	logRow, err := ctrl.findLogByDate(student.StudentID, today)
	if err != nil {
		return err
	}
	if logRow == nil || logRow.TimelogTimeIn == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please time in first before saving accomplishments")
	}

	acc, err := ctrl.findAccomplishment(logRow.TimelogID)
	if err != nil {
		return err
	}
	if acc == nil {
		acc = &model.DailyAccomplishmentModel{
			AccomplishmentLogID:     logRow.TimelogID,
			AccomplishmentStudentID: student.StudentID,
			AccomplishmentDate:      today,
		}
	}
	if req.Tasks != nil {
		acc.AccomplishmentTasks = req.Tasks
	}
	if req.Accomplishments != nil {
		acc.AccomplishmentNotes = req.Accomplishments
	}

	if err := ctrl.DB.Save(acc).Error; err != nil {
		log.Printf("[ATTENDANCE] accomplishment upsert failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save accomplishments")
	}

	return helper.JsonOK(c, "Accomplishments saved", dto.ToTimeLogResponse(logRow, acc, ""))
}

// SubmitToday moves today's record from draft into the supervisor's queue.
func (ctrl *AttendanceController) SubmitToday(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	today := service.DateOnly(time.Now())
	logRow, err := ctrl.findLogByDate(student.StudentID, today)
	if err != nil {
		return err
	}

	var tasks, notes string
	acc, err := ctrl.findAccomplishment(logIDOrNil(logRow))
	if err != nil {
		return err
	}
	if acc != nil {
		tasks = derefOr(acc.AccomplishmentTasks, "")
		notes = derefOr(acc.AccomplishmentNotes, "")
	}

	if err := service.CanSubmit(logRow, tasks, notes); err != nil {
		return err
	}

	now := time.Now()
	logRow.TimelogWorkflowStatus = model.WorkflowSubmitted
	logRow.TimelogSubmittedAt = &now

	if err := ctrl.DB.Save(logRow).Error; err != nil {
		log.Printf("[ATTENDANCE] submit failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit today's record")
	}

	return helper.JsonUpdated(c, "Today's record submitted", dto.ToTimeLogResponse(logRow, acc, ""))
}

/* ===============================
   Reads
=================================*/

func (ctrl *AttendanceController) GetToday(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	today := service.DateOnly(time.Now())
	logRow, err := ctrl.findLogByDate(student.StudentID, today)
	if err != nil {
		return err
	}
	if logRow == nil {
		// no record yet is a normal morning state, not an error
		return helper.JsonOK(c, "No record for today yet", nil)
	}

	acc, _ := ctrl.findAccomplishment(logRow.TimelogID)
	ws := ctrl.scheduleFor(student.StudentID)
	warning := service.ClassifyLog(*logRow, ws)
	return helper.JsonOK(c, "Today's record fetched", dto.ToTimeLogResponse(logRow, acc, warning))
}

// GetLogs returns every log with its validation warning plus the running
// totals a student sees on their dashboard.
func (ctrl *AttendanceController) GetLogs(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	logs, err := ctrl.listLogs(student.StudentID, nil, nil)
	if err != nil {
		return err
	}

	ws := ctrl.scheduleFor(student.StudentID)
	summary := service.Summarize(logs, ws)

	accByLog, err := accomplishmentsForLogs(ctrl.DB, logs)
	if err != nil {
		return err
	}

	items := make([]dto.TimeLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, dto.ToTimeLogResponse(&logs[i], accByLog[logs[i].TimelogID], service.ClassifyLog(logs[i], ws)))
	}

	return helper.JsonOK(c, "Logs fetched", fiber.Map{
		"logs":         items,
		"total_hours":  summary.TotalHours.StringFixed(2),
		"valid_days":   summary.ValidDays,
		"invalid_logs": summary.InvalidLogs,
		"total_days":   len(logs),
	})
}

// GetHistory is the paginated variant of GetLogs, newest first.
func (ctrl *AttendanceController) GetHistory(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TimeLogModel{}).
		Where("timelog_student_id = ?", student.StudentID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance history")
	}

	var logs []model.TimeLogModel
	if err := ctrl.DB.
		Where("timelog_student_id = ?", student.StudentID).
		Order("timelog_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance history")
	}

	ws := ctrl.scheduleFor(student.StudentID)
	accByLog, err := accomplishmentsForLogs(ctrl.DB, logs)
	if err != nil {
		return err
	}

	items := make([]dto.TimeLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, dto.ToTimeLogResponse(&logs[i], accByLog[logs[i].TimelogID], service.ClassifyLog(logs[i], ws)))
	}

	return helper.JsonList(c, "History fetched", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetProgress reports the authenticated student's own hour totals.
func (ctrl *AttendanceController) GetProgress(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		return err
	}
	resp, err := buildProgress(ctrl.DB, student)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Progress fetched", resp)
}

// GetProgressByStudentID serves coordinator/supervisor-side progress
// lookups by student id.
func (ctrl *AttendanceController) GetProgressByStudentID(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	resp, err := buildProgress(ctrl.DB, &student)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Progress fetched", resp)
}

/* ===============================
   Shared lookups
=================================*/

// buildProgress recomputes a student's totals from their stored logs;
// shared by the self, staff, and supervisor-roster read paths.
func buildProgress(db *gorm.DB, student *studentModel.StudentModel) (dto.ProgressResponse, error) {
	var logs []model.TimeLogModel
	if err := db.
		Where("timelog_student_id = ?", student.StudentID).
		Order("timelog_date ASC").
		Find(&logs).Error; err != nil {
		return dto.ProgressResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance logs")
	}

	var app *internshipModel.InternshipApplicationModel
	if a, err := internshipSvc.FindAcceptedApplication(db, student.StudentID); err == nil {
		app = a
	}

	var ws schedule.WorkSchedule
	started := false
	var startDateStr *string
	if app != nil {
		ws = internshipSvc.GetEmployerSchedule(db, app)
		if app.ApplicationOJTStartDate != nil {
			s := app.ApplicationOJTStartDate.Format("2006-01-02")
			startDateStr = &s
			started = service.CalendarDate(time.Now()) >= service.CalendarDate(*app.ApplicationOJTStartDate)
		}
	}

	summary := service.Summarize(logs, ws)
	required := student.StudentRequiredHours
	if required <= 0 {
		required = service.DefaultRequiredHours
	}

	remaining := decimal.NewFromInt(int64(required)).Sub(summary.TotalHours)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return dto.ProgressResponse{
		StudentID:      student.StudentID,
		RequiredHours:  required,
		CompletedHours: summary.TotalHours.StringFixed(2),
		RemainingHours: remaining.StringFixed(2),
		ValidDays:      summary.ValidDays,
		InvalidLogs:    summary.InvalidLogs,
		OJTStatus:      service.DeriveOJTStatus(started, summary.TotalHours, required),
		OJTStartDate:   startDateStr,
	}, nil
}

func (ctrl *AttendanceController) currentStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student profile")
	}
	return &student, nil
}

func (ctrl *AttendanceController) findLogByDate(studentID uuid.UUID, date time.Time) (*model.TimeLogModel, error) {
	var row model.TimeLogModel
	err := ctrl.DB.
		Where("timelog_student_id = ? AND timelog_date = ?", studentID, date).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance record")
	}
	return &row, nil
}

func (ctrl *AttendanceController) findAccomplishment(logID uuid.UUID) (*model.DailyAccomplishmentModel, error) {
	if logID == uuid.Nil {
		return nil, nil
	}
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

// accomplishmentsForLogs bulk-loads the accomplishment rows for a page of
// logs in one query, keyed by log id.
func accomplishmentsForLogs(db *gorm.DB, logs []model.TimeLogModel) (map[uuid.UUID]*model.DailyAccomplishmentModel, error) {
	if len(logs) == 0 {
		return map[uuid.UUID]*model.DailyAccomplishmentModel{}, nil
	}

	ids := make([]uuid.UUID, 0, len(logs))
	for i := range logs {
		ids = append(ids, logs[i].TimelogID)
	}

	var accs []model.DailyAccomplishmentModel
	if err := db.Where("accomplishment_log_id IN ?", ids).Find(&accs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load accomplishment records")
	}
	return mapAccomplishmentsByLog(accs), nil
}

func mapAccomplishmentsByLog(accs []model.DailyAccomplishmentModel) map[uuid.UUID]*model.DailyAccomplishmentModel {
	byLog := make(map[uuid.UUID]*model.DailyAccomplishmentModel, len(accs))
	for i := range accs {
		byLog[accs[i].AccomplishmentLogID] = &accs[i]
	}
	return byLog
}

func (ctrl *AttendanceController) listLogs(studentID uuid.UUID, from, to *time.Time) ([]model.TimeLogModel, error) {
	q := ctrl.DB.Where("timelog_student_id = ?", studentID)
	if from != nil {
		q = q.Where("timelog_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("timelog_date <= ?", *to)
	}

	var logs []model.TimeLogModel
	if err := q.Order("timelog_date ASC").Find(&logs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance logs")
	}
	return logs, nil
}

func (ctrl *AttendanceController) scheduleFor(studentID uuid.UUID) schedule.WorkSchedule {
	app, err := internshipSvc.FindAcceptedApplication(ctrl.DB, studentID)
	if err != nil {
		return nil
	}
	return internshipSvc.GetEmployerSchedule(ctrl.DB, app)
}

/* ===============================
   Small helpers
=================================*/

// hoursWithin picks the employer's window for the day when one exists and
// falls back to the fixed default window otherwise.
func hoursWithin(ws schedule.WorkSchedule, timeIn, timeOut time.Time) decimal.Decimal {
	if day, ok := ws.DayFor(timeOut); ok {
		return service.CalculateScheduleHours(timeIn, timeOut, day)
	}
	return service.CalculateValidHours(timeIn, timeOut)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func logIDOrNil(row *model.TimeLogModel) uuid.UUID {
	if row == nil {
		return uuid.Nil
	}
	return row.TimelogID
}
