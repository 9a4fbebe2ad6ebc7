package dto

import (
	"time"

	"github.com/google/uuid"

	"ojtms_backend/internals/features/ojt/attendance/model"
)

type SaveAccomplishmentsRequest struct {
	Tasks           *string `json:"tasks" validate:"omitempty,max=5000"`
	Accomplishments *string `json:"accomplishments" validate:"omitempty,max=5000"`
}

// UpdateRecordRequest carries a supervisor-side correction. Times are
// RFC 3339; omitted fields keep their stored value.
type UpdateRecordRequest struct {
	TimeIn          *time.Time `json:"time_in"`
	TimeOut         *time.Time `json:"time_out"`
	Tasks           *string    `json:"tasks" validate:"omitempty,max=5000"`
	Accomplishments *string    `json:"accomplishments" validate:"omitempty,max=5000"`
	Remarks         *string    `json:"remarks" validate:"omitempty,max=2000"`
}

type TimeLogResponse struct {
	TimeLogID         uuid.UUID  `json:"timelog_id"`
	StudentID         uuid.UUID  `json:"student_id"`
	Date              string     `json:"date"`
	TimeIn            *time.Time `json:"time_in"`
	TimeOut           *time.Time `json:"time_out"`
	TotalHours        *string    `json:"total_hours"`
	Status            string     `json:"status"`
	WorkflowStatus    string     `json:"workflow_status"`
	Tasks             *string    `json:"tasks,omitempty"`
	Accomplishments   *string    `json:"accomplishments,omitempty"`
	Remarks           *string    `json:"remarks,omitempty"`
	Warning           string     `json:"warning,omitempty"`
	ModifiedAfterDate bool       `json:"modified_after_date"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	ValidatedAt       *time.Time `json:"validated_at,omitempty"`
	ValidatedBy       *uuid.UUID `json:"validated_by,omitempty"`
}

// ToTimeLogResponse flattens a log and its accomplishment row into one
// wire shape. warning comes from the log classifier and may be empty.
func ToTimeLogResponse(log *model.TimeLogModel, acc *model.DailyAccomplishmentModel, warning string) TimeLogResponse {
	resp := TimeLogResponse{
		TimeLogID:         log.TimelogID,
		StudentID:         log.TimelogStudentID,
		Date:              log.TimelogDate.Format("2006-01-02"),
		TimeIn:            log.TimelogTimeIn,
		TimeOut:           log.TimelogTimeOut,
		Status:            log.TimelogStatus,
		WorkflowStatus:    log.TimelogWorkflowStatus,
		Remarks:           log.TimelogRemarks,
		Warning:           warning,
		ModifiedAfterDate: log.TimelogModifiedAfterDate,
		SubmittedAt:       log.TimelogSubmittedAt,
		ValidatedAt:       log.TimelogValidatedAt,
		ValidatedBy:       log.TimelogValidatedBy,
	}
	if log.TimelogTotalHours.Valid {
		s := log.TimelogTotalHours.Decimal.StringFixed(2)
		resp.TotalHours = &s
	}
	if acc != nil {
		resp.Tasks = acc.AccomplishmentTasks
		resp.Accomplishments = acc.AccomplishmentNotes
	}
	return resp
}

type ProgressResponse struct {
	StudentID      uuid.UUID `json:"student_id"`
	RequiredHours  int       `json:"required_hours"`
	CompletedHours string    `json:"completed_hours"`
	RemainingHours string    `json:"remaining_hours"`
	ValidDays      int       `json:"valid_days"`
	InvalidLogs    int       `json:"invalid_logs"`
	OJTStatus      string    `json:"ojt_status"`
	OJTStartDate   *string   `json:"ojt_start_date,omitempty"`
}
