package controller

import (
	"errors"

	attendanceDTO "omshanti_backend/internals/features/attendance/dto"
	attendanceService "omshanti_backend/internals/features/attendance/service"
	centerModel "omshanti_backend/internals/features/centers/model"
	helper "omshanti_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===============================
   PUBLIC KEYPAD FLOW
=============================== */

// POST /api/attendance/mark/:center_code
// The keypad page is anonymous; the center is addressed by its code and the
// optional gate password is checked before the marking service runs.
func (ctrl *AttendanceController) MarkByRoll(c *fiber.Ctx) error {
	centerCode := c.Params("center_code")

	var req attendanceDTO.MarkByRollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_code = ?", centerCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up center")
	}

	if center.CenterAttendancePasswordEnabled {
		if req.AttendancePassword == "" {
			return helper.ErrorWithDetails(c, fiber.StatusUnauthorized,
				"Attendance password is required", fiber.Map{"password_protected": true})
		}
		if center.CenterAttendancePassword == nil || req.AttendancePassword != *center.CenterAttendancePassword {
			return helper.ErrorWithDetails(c, fiber.StatusUnauthorized,
				"Invalid attendance password", fiber.Map{"password_protected": true})
		}
	}

	result, err := attendanceService.MarkPresentByRoll(ctrl.DB, center.CenterID, req.RollNumber, "")
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrInvalidRollNumber):
			return fiber.NewError(fiber.StatusBadRequest, "Roll number must contain only digits (000-999)")
		case errors.Is(err, attendanceService.ErrStudentNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Student does not exist in database. Please check with Center Sister.")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
		}
	}

	resp := attendanceDTO.MarkResponse{
		StudentName:   result.StudentName,
		Date:          result.Date,
		AlreadyMarked: result.AlreadyMarked,
	}
	if result.AlreadyMarked {
		resp.Message = "Attendance already marked for " + result.StudentName
		return helper.Success(c, resp.Message, resp)
	}
	resp.Message = "Attendance marked for " + result.StudentName
	return helper.JsonCreated(c, resp.Message, resp)
}

// GET /api/attendance/password-check/:center_code
// Lets the keypad page know up front whether the gate is enabled.
func (ctrl *AttendanceController) CheckGateStatus(c *fiber.Ctx) error {
	centerCode := c.Params("center_code")

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_code = ?", centerCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up center")
	}

	return helper.Success(c, "Center found", fiber.Map{
		"center_code":        center.CenterCode,
		"center_name":        center.CenterName,
		"password_protected": center.CenterAttendancePasswordEnabled,
	})
}

// POST /api/attendance/verify-password/:center_code
// Standalone gate verification for the keypad page. Verify-only; no fact is
// ever written through this endpoint.
func (ctrl *AttendanceController) VerifyGatePassword(c *fiber.Ctx) error {
	centerCode := c.Params("center_code")

	var req attendanceDTO.VerifyGatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_code = ?", centerCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up center")
	}

	if !center.CenterAttendancePasswordEnabled {
		return helper.Success(c, "No attendance password is set for this center", fiber.Map{
			"password_valid": true,
		})
	}
	valid := center.CenterAttendancePassword != nil && req.AttendancePassword == *center.CenterAttendancePassword
	if !valid {
		return helper.ErrorWithDetails(c, fiber.StatusUnauthorized,
			"Invalid attendance password", fiber.Map{"password_valid": false})
	}
	return helper.Success(c, "Password verified successfully", fiber.Map{
		"password_valid": true,
	})
}

/* ===============================
   ADMIN FLOWS
=============================== */

// POST /api/admin/attendance/:student_id
func (ctrl *AttendanceController) MarkByAdmin(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var req attendanceDTO.AdminMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := attendanceService.MarkPresentByStudent(ctrl.DB, centerID, studentID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, attendanceService.ErrStudentNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		case errors.Is(err, attendanceService.ErrInvalidReportParams):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
		}
	}

	resp := attendanceDTO.MarkResponse{
		StudentName:   result.StudentName,
		Date:          result.Date,
		AlreadyMarked: result.AlreadyMarked,
	}
	if result.AlreadyMarked {
		resp.Message = "Attendance already marked for this date"
		return helper.Success(c, resp.Message, resp)
	}
	resp.Message = "Attendance marked successfully"
	return helper.JsonCreated(c, resp.Message, resp)
}

// DELETE /api/admin/attendance/:student_id
func (ctrl *AttendanceController) UnmarkByAdmin(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var req attendanceDTO.UnmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows, err := attendanceService.Unmark(ctrl.DB, centerID, studentID, req.Date)
	if err != nil {
		if errors.Is(err, attendanceService.ErrInvalidReportParams) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove attendance")
	}

	return helper.Success(c, "Attendance removal processed", fiber.Map{
		"date":          req.Date,
		"rows_affected": rows,
	})
}
