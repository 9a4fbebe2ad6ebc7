package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"ojtms_backend/internals/features/employers/model"
)

type UpdateProfileRequest struct {
	CompanyName  *string         `json:"company_name" validate:"omitempty,min=2,max=100"`
	Email        *string         `json:"email" validate:"omitempty,email,max=150"`
	PhoneNumber  *string         `json:"phone_number" validate:"omitempty,max=20"`
	Address      *string         `json:"address" validate:"omitempty,max=500"`
	Website      *string         `json:"website" validate:"omitempty,url,max=150"`
	WorkSchedule json.RawMessage `json:"work_schedule" validate:"omitempty"`
}

type ProfileResponse struct {
	EmployerID   uuid.UUID       `json:"employer_id"`
	CompanyName  string          `json:"company_name"`
	Email        string          `json:"email"`
	PhoneNumber  *string         `json:"phone_number,omitempty"`
	Address      *string         `json:"address,omitempty"`
	Website      *string         `json:"website,omitempty"`
	WorkSchedule json.RawMessage `json:"work_schedule,omitempty"`
	Status       string          `json:"status"`
}

func ToProfileResponse(m *model.EmployerModel) ProfileResponse {
	return ProfileResponse{
		EmployerID:   m.EmployerID,
		CompanyName:  m.EmployerCompanyName,
		Email:        m.EmployerEmail,
		PhoneNumber:  m.EmployerPhoneNumber,
		Address:      m.EmployerAddress,
		Website:      m.EmployerWebsite,
		WorkSchedule: json.RawMessage(m.EmployerWorkSchedule),
		Status:       m.EmployerStatus,
	}
}
