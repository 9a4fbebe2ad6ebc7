package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "ojtms_backend/internals/helpers"

	"ojtms_backend/internals/features/employers/dto"
	"ojtms_backend/internals/features/employers/model"
	"ojtms_backend/internals/features/ojt/schedule"
)

type EmployerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmployerController(db *gorm.DB) *EmployerController {
	return &EmployerController{
		DB:       db,
		Validate: validator.New(),
	}
}

func (ctrl *EmployerController) GetProfile(c *fiber.Ctx) error {
	employer, err := ctrl.currentEmployer(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Employer profile fetched", dto.ToProfileResponse(employer))
}

// UpdateProfile patches the employer row. A submitted work schedule is
// parsed strictly here so only a valid one is ever stored; the lenient
// read path protects older rows, not new writes.
func (ctrl *EmployerController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	employer, err := ctrl.currentEmployer(c)
	if err != nil {
		return err
	}

	if req.CompanyName != nil {
		employer.EmployerCompanyName = *req.CompanyName
	}
	if req.Email != nil {
		employer.EmployerEmail = *req.Email
	}
	if req.PhoneNumber != nil {
		employer.EmployerPhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		employer.EmployerAddress = req.Address
	}
	if req.Website != nil {
		employer.EmployerWebsite = req.Website
	}
	if len(req.WorkSchedule) > 0 {
		if _, err := schedule.Parse([]byte(req.WorkSchedule)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid work schedule: "+err.Error())
		}
		employer.EmployerWorkSchedule = datatypes.JSON(req.WorkSchedule)
	}

	if err := ctrl.DB.Save(employer).Error; err != nil {
		log.Printf("[EMPLOYER] profile update failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update employer profile")
	}

	return helper.JsonUpdated(c, "Employer profile updated", dto.ToProfileResponse(employer))
}

func (ctrl *EmployerController) currentEmployer(c *fiber.Ctx) (*model.EmployerModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var employer model.EmployerModel
	if err := ctrl.DB.First(&employer, "employer_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Employer profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load employer profile")
	}
	return &employer, nil
}
