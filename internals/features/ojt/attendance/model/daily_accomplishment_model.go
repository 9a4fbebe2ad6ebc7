package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyAccomplishmentModel is the 1:1 narrative attached to a time log.
// It never exists before its parent log: time-in creates the log first.
type DailyAccomplishmentModel struct {
	AccomplishmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:accomplishment_id" json:"accomplishment_id"`

	AccomplishmentLogID     uuid.UUID `gorm:"type:uuid;not null;unique;column:accomplishment_log_id" json:"accomplishment_log_id"`
	AccomplishmentStudentID uuid.UUID `gorm:"type:uuid;not null;column:accomplishment_student_id" json:"accomplishment_student_id"`
	AccomplishmentDate      time.Time `gorm:"type:date;not null;column:accomplishment_date" json:"accomplishment_date"`

	AccomplishmentTasks *string `gorm:"type:text;column:accomplishment_tasks" json:"accomplishment_tasks,omitempty"`
	AccomplishmentNotes *string `gorm:"type:text;column:accomplishment_notes" json:"accomplishment_notes,omitempty"`

	AccomplishmentCreatedAt time.Time      `gorm:"column:accomplishment_created_at;autoCreateTime" json:"accomplishment_created_at"`
	AccomplishmentUpdatedAt *time.Time     `gorm:"column:accomplishment_updated_at;autoUpdateTime" json:"accomplishment_updated_at,omitempty"`
	AccomplishmentDeletedAt gorm.DeletedAt `gorm:"column:accomplishment_deleted_at;index" json:"accomplishment_deleted_at,omitempty"`
}

func (DailyAccomplishmentModel) TableName() string { return "daily_accomplishments" }
