package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application lifecycle
const (
	ApplicationPending   = "pending"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

type InternshipModel struct {
	InternshipID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:internship_id" json:"internship_id"`
	InternshipEmployerID uuid.UUID `gorm:"type:uuid;not null;index;column:internship_employer_id" json:"internship_employer_id"`

	InternshipTitle       string  `gorm:"type:varchar(150);not null;column:internship_title" json:"internship_title"`
	InternshipDescription *string `gorm:"type:text;column:internship_description" json:"internship_description,omitempty"`
	InternshipSlots       int     `gorm:"not null;default:1;column:internship_slots" json:"internship_slots"`
	InternshipIsOpen      bool    `gorm:"not null;default:true;column:internship_is_open" json:"internship_is_open"`

	InternshipCreatedAt time.Time      `gorm:"column:internship_created_at;autoCreateTime" json:"internship_created_at"`
	InternshipUpdatedAt *time.Time     `gorm:"column:internship_updated_at;autoUpdateTime" json:"internship_updated_at,omitempty"`
	InternshipDeletedAt gorm.DeletedAt `gorm:"column:internship_deleted_at;index" json:"internship_deleted_at,omitempty"`
}

func (InternshipModel) TableName() string { return "internships" }

type InternshipApplicationModel struct {
	ApplicationID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:application_id" json:"application_id"`
	ApplicationStudentID    uuid.UUID `gorm:"type:uuid;not null;index;column:application_student_id" json:"application_student_id"`
	ApplicationInternshipID uuid.UUID `gorm:"type:uuid;not null;index;column:application_internship_id" json:"application_internship_id"`

	ApplicationStatus string `gorm:"type:varchar(10);not null;default:pending;column:application_status" json:"application_status"`

	// set when the employer accepts; attendance is rejected before this date
	ApplicationOJTStartDate *time.Time `gorm:"type:date;column:application_ojt_start_date" json:"application_ojt_start_date,omitempty"`

	ApplicationAppliedAt time.Time      `gorm:"column:application_applied_at;autoCreateTime" json:"application_applied_at"`
	ApplicationUpdatedAt *time.Time     `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at,omitempty"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"application_deleted_at,omitempty"`
}

func (InternshipApplicationModel) TableName() string { return "internship_applications" }
