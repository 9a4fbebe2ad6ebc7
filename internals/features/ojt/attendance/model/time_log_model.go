package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Clock statuses
const (
	StatusIncomplete = "incomplete"
	StatusComplete   = "complete"
)

// Submission workflow statuses
const (
	WorkflowDraft     = "draft"
	WorkflowSubmitted = "submitted"
	WorkflowApproved  = "approved"
	WorkflowRejected  = "rejected"
)

// TimeLogModel is one student's attendance for one calendar date. The
// unique index on (student, date) is what makes concurrent double time-in
// safe; see the controller's 23505 handling.
type TimeLogModel struct {
	TimelogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timelog_id" json:"timelog_id"`

	TimelogStudentID     uuid.UUID `gorm:"type:uuid;not null;column:timelog_student_id;uniqueIndex:uq_timelog_student_date" json:"timelog_student_id"`
	TimelogApplicationID uuid.UUID `gorm:"type:uuid;not null;column:timelog_application_id" json:"timelog_application_id"`
	TimelogDate          time.Time `gorm:"type:date;not null;column:timelog_date;uniqueIndex:uq_timelog_student_date" json:"timelog_date"`

	TimelogTimeIn     *time.Time          `gorm:"column:timelog_time_in" json:"timelog_time_in,omitempty"`
	TimelogTimeOut    *time.Time          `gorm:"column:timelog_time_out" json:"timelog_time_out,omitempty"`
	TimelogTotalHours decimal.NullDecimal `gorm:"type:numeric(5,2);column:timelog_total_hours" json:"timelog_total_hours,omitempty"`

	TimelogStatus         string `gorm:"type:varchar(20);not null;default:incomplete;column:timelog_status" json:"timelog_status"`
	TimelogWorkflowStatus string `gorm:"type:varchar(20);not null;default:draft;column:timelog_workflow_status" json:"timelog_workflow_status"`

	TimelogRemarks     *string    `gorm:"type:text;column:timelog_remarks" json:"timelog_remarks,omitempty"`
	TimelogSubmittedAt *time.Time `gorm:"column:timelog_submitted_at" json:"timelog_submitted_at,omitempty"`
	TimelogValidatedAt *time.Time `gorm:"column:timelog_validated_at" json:"timelog_validated_at,omitempty"`

	// references trainee_supervisors(supervisor_id)
	TimelogValidatedBy *uuid.UUID `gorm:"type:uuid;column:timelog_validated_by" json:"timelog_validated_by,omitempty"`

	// set when a supervisor edits the row after its date has passed
	TimelogModifiedAfterDate bool `gorm:"not null;default:false;column:timelog_modified_after_date" json:"timelog_modified_after_date"`

	TimelogCreatedAt time.Time      `gorm:"column:timelog_created_at;autoCreateTime" json:"timelog_created_at"`
	TimelogUpdatedAt *time.Time     `gorm:"column:timelog_updated_at;autoUpdateTime" json:"timelog_updated_at,omitempty"`
	TimelogDeletedAt gorm.DeletedAt `gorm:"column:timelog_deleted_at;index" json:"timelog_deleted_at,omitempty"`
}

func (TimeLogModel) TableName() string { return "daily_time_logs" }

// HoursOrZero unwraps the stored total.
func (m TimeLogModel) HoursOrZero() decimal.Decimal {
	if m.TimelogTotalHours.Valid {
		return m.TimelogTotalHours.Decimal
	}
	return decimal.Zero
}
