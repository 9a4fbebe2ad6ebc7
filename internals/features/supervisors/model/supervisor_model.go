package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment lifecycle
const (
	AssignmentActive     = "active"
	AssignmentCompleted  = "completed"
	AssignmentTerminated = "terminated"
)

type TraineeSupervisorModel struct {
	SupervisorID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:supervisor_id" json:"supervisor_id"`
	SupervisorUserID     *uuid.UUID `gorm:"type:uuid;column:supervisor_user_id" json:"supervisor_user_id,omitempty"`
	SupervisorEmployerID uuid.UUID  `gorm:"type:uuid;not null;column:supervisor_employer_id" json:"supervisor_employer_id"`

	SupervisorFirstName string  `gorm:"type:varchar(50);not null;column:supervisor_first_name" json:"supervisor_first_name"`
	SupervisorLastName  string  `gorm:"type:varchar(50);not null;column:supervisor_last_name" json:"supervisor_last_name"`
	SupervisorEmail     string  `gorm:"type:varchar(150);not null;column:supervisor_email" json:"supervisor_email"`
	SupervisorPosition  *string `gorm:"type:varchar(100);column:supervisor_position" json:"supervisor_position,omitempty"`

	SupervisorCreatedAt time.Time      `gorm:"column:supervisor_created_at;autoCreateTime" json:"supervisor_created_at"`
	SupervisorUpdatedAt *time.Time     `gorm:"column:supervisor_updated_at;autoUpdateTime" json:"supervisor_updated_at,omitempty"`
	SupervisorDeletedAt gorm.DeletedAt `gorm:"column:supervisor_deleted_at;index" json:"supervisor_deleted_at,omitempty"`
}

func (TraineeSupervisorModel) TableName() string { return "trainee_supervisors" }

func (s *TraineeSupervisorModel) FullName() string {
	return s.SupervisorFirstName + " " + s.SupervisorLastName
}

type StudentSupervisorAssignmentModel struct {
	AssignmentID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentStudentID    uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_student_id" json:"assignment_student_id"`
	AssignmentSupervisorID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_supervisor_id" json:"assignment_supervisor_id"`

	AssignmentStatus     string     `gorm:"type:varchar(10);not null;default:active;column:assignment_status" json:"assignment_status"`
	AssignmentAssignedAt time.Time  `gorm:"column:assignment_assigned_at;autoCreateTime" json:"assignment_assigned_at"`
	AssignmentEndedAt    *time.Time `gorm:"column:assignment_ended_at" json:"assignment_ended_at,omitempty"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt *time.Time     `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at,omitempty"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (StudentSupervisorAssignmentModel) TableName() string { return "student_supervisor_assignments" }
