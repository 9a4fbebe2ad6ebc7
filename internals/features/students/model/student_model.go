package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"type:uuid;not null;unique;column:student_user_id" json:"student_user_id"`
	StudentSrCode string    `gorm:"type:varchar(20);not null;unique;column:student_sr_code" json:"student_sr_code"`

	StudentFirstName string  `gorm:"type:varchar(100);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string  `gorm:"type:varchar(100);not null;column:student_last_name" json:"student_last_name"`
	StudentEmail     string  `gorm:"type:varchar(255);not null;column:student_email" json:"student_email"`
	StudentProgram   *string `gorm:"type:varchar(255);column:student_program" json:"student_program,omitempty"`
	StudentMajor     *string `gorm:"type:varchar(255);column:student_major" json:"student_major,omitempty"`

	// target total against which valid hours are compared
	StudentRequiredHours int `gorm:"not null;default:486;column:student_required_hours" json:"student_required_hours"`

	StudentStatus string `gorm:"type:varchar(8);not null;default:active;column:student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m StudentModel) FullName() string {
	return m.StudentFirstName + " " + m.StudentLastName
}
