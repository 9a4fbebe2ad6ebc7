package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmployerModel struct {
	EmployerID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employer_id" json:"employer_id"`
	EmployerUserID *uuid.UUID `gorm:"type:uuid;column:employer_user_id" json:"employer_user_id,omitempty"`

	EmployerCompanyName string  `gorm:"type:varchar(100);not null;column:employer_company_name" json:"employer_company_name"`
	EmployerEmail       string  `gorm:"type:varchar(150);not null;column:employer_email" json:"employer_email"`
	EmployerPhoneNumber *string `gorm:"type:varchar(20);column:employer_phone_number" json:"employer_phone_number,omitempty"`
	EmployerAddress     *string `gorm:"type:text;column:employer_address" json:"employer_address,omitempty"`
	EmployerWebsite     *string `gorm:"type:varchar(150);column:employer_website" json:"employer_website,omitempty"`

	// per-weekday working windows with breaks; validated at the profile
	// boundary, parsed leniently everywhere else
	EmployerWorkSchedule datatypes.JSON `gorm:"type:jsonb;column:employer_work_schedule" json:"employer_work_schedule,omitempty"`

	EmployerStatus string `gorm:"type:varchar(8);not null;default:pending;column:employer_status" json:"employer_status"`

	EmployerCreatedAt time.Time      `gorm:"column:employer_created_at;autoCreateTime" json:"employer_created_at"`
	EmployerUpdatedAt *time.Time     `gorm:"column:employer_updated_at;autoUpdateTime" json:"employer_updated_at,omitempty"`
	EmployerDeletedAt gorm.DeletedAt `gorm:"column:employer_deleted_at;index" json:"employer_deleted_at,omitempty"`
}

func (EmployerModel) TableName() string { return "employers" }
