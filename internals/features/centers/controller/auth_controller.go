package controller

import (
	"errors"

	centerDTO "omshanti_backend/internals/features/centers/dto"
	centerModel "omshanti_backend/internals/features/centers/model"
	centerService "omshanti_backend/internals/features/centers/service"
	helper "omshanti_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req centerDTO.RegisterCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	center, err := centerService.RegisterCenter(ctrl.DB, req.CenterCode, req.Name, req.Password, req.Address, req.Contact)
	if err != nil {
		if errors.Is(err, centerService.ErrCenterCodeTaken) {
			return fiber.NewError(fiber.StatusConflict, "Center code is already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register center")
	}

	token, err := centerService.IssueCenterToken(center.CenterID, center.CenterCode)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Center registered successfully", centerDTO.LoginResponse{
		Center: centerDTO.FromCenterModel(*center),
		Token:  token,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req centerDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	center, token, err := centerService.LoginCenter(ctrl.DB, req.CenterCode, req.Password)
	if err != nil {
		if errors.Is(err, centerService.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid center code or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	return helper.Success(c, "Login successful", centerDTO.LoginResponse{
		Center: centerDTO.FromCenterModel(*center),
		Token:  token,
	})
}

// GET /api/admin/profile
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.Success(c, "Profile fetched successfully", centerDTO.FromCenterModel(center))
}

// PUT /api/admin/profile
func (ctrl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req centerDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	center.CenterName = req.Name
	center.CenterAddress = req.Address
	center.CenterContact = req.Contact
	if err := ctrl.DB.Save(&center).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Profile updated successfully", centerDTO.FromCenterModel(center))
}

// PUT /api/admin/password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req centerDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := centerService.ChangeCenterPassword(ctrl.DB, centerID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, centerService.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to change password")
	}

	return helper.Success(c, "Password changed successfully", nil)
}
