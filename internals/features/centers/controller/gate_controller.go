package controller

import (
	"errors"
	"strings"

	centerDTO "omshanti_backend/internals/features/centers/dto"
	centerModel "omshanti_backend/internals/features/centers/model"
	helper "omshanti_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GateController manages the optional shared password in front of the public
// attendance keypad.
type GateController struct {
	DB *gorm.DB
}

func NewGateController(db *gorm.DB) *GateController {
	return &GateController{DB: db}
}

// GET /api/admin/attendance-password
func (ctrl *GateController) GetSettings(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch settings")
	}

	resp := centerDTO.GateSettingsResponse{
		AttendancePasswordEnabled: center.CenterAttendancePasswordEnabled,
	}
	if center.CenterAttendancePassword != nil {
		resp.AttendancePassword = *center.CenterAttendancePassword
	}
	return helper.Success(c, "Attendance password settings fetched", resp)
}

// PUT /api/admin/attendance-password
// Enabling the gate without a password is rejected; disabling clears nothing,
// so the old password comes back if the gate is re-enabled without a new one.
func (ctrl *GateController) UpdateSettings(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req centerDTO.GateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.AttendancePassword = strings.TrimSpace(req.AttendancePassword)
	if req.AttendancePasswordEnabled && req.AttendancePassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Attendance password is required when protection is enabled")
	}

	updates := map[string]interface{}{
		"center_attendance_password_enabled": req.AttendancePasswordEnabled,
	}
	if req.AttendancePassword != "" {
		updates["center_attendance_password"] = req.AttendancePassword
	}

	if err := ctrl.DB.Model(&centerModel.CenterModel{}).
		Where("center_id = ?", centerID).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update settings")
	}

	return helper.Success(c, "Attendance password settings updated", centerDTO.GateSettingsResponse{
		AttendancePassword:        req.AttendancePassword,
		AttendancePasswordEnabled: req.AttendancePasswordEnabled,
	})
}
