package controller

import (
	"database/sql"
	"errors"
	"time"

	"omshanti_backend/internals/configs"
	"omshanti_backend/internals/constants"
	centerDTO "omshanti_backend/internals/features/centers/dto"
	centerModel "omshanti_backend/internals/features/centers/model"
	superAdminDTO "omshanti_backend/internals/features/superadmin/dto"
	superAdminModel "omshanti_backend/internals/features/superadmin/model"
	helper "omshanti_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SuperAdminController struct {
	DB *gorm.DB
}

func NewSuperAdminController(db *gorm.DB) *SuperAdminController {
	return &SuperAdminController{DB: db}
}

/* ===============================
   AUTH
=============================== */

// POST /api/superadmin/login
func (ctrl *SuperAdminController) Login(c *fiber.Ctx) error {
	var req superAdminDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin superAdminModel.SuperAdminModel
	if err := ctrl.DB.First(&admin, "super_admin_username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SuperAdminPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&admin).Update("super_admin_last_login_at", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	claims := jwt.MapClaims{
		"super_admin_id": admin.SuperAdminID.String(),
		"username":       admin.SuperAdminUsername,
		"role":           constants.RoleSuperAdmin,
		"iat":            now.Unix(),
		"exp":            now.Add(12 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.SuperAdminJWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", superAdminDTO.LoginResponse{
		SuperAdminID: admin.SuperAdminID,
		Username:     admin.SuperAdminUsername,
		Role:         constants.RoleSuperAdmin,
		Token:        token,
	})
}

// PUT /api/superadmin/password
func (ctrl *SuperAdminController) ChangePassword(c *fiber.Ctx) error {
	adminID, err := helper.GetSuperAdminIDFromToken(c)
	if err != nil {
		return err
	}

	var req superAdminDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin superAdminModel.SuperAdminModel
	if err := ctrl.DB.First(&admin, "super_admin_id = ?", adminID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SuperAdminPassword), []byte(req.CurrentPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to change password")
	}
	if err := ctrl.DB.Model(&admin).Update("super_admin_password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to change password")
	}

	return helper.Success(c, "Password changed successfully", nil)
}

/* ===============================
   CENTER OVERSIGHT
=============================== */

// GET /api/superadmin/centers
func (ctrl *SuperAdminController) ListCenters(c *fiber.Ctx) error {
	if _, err := helper.GetSuperAdminIDFromToken(c); err != nil {
		return err
	}

	var centers []centerModel.CenterModel
	if err := ctrl.DB.Order("center_created_at ASC").Find(&centers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch centers")
	}

	rows := make([]superAdminDTO.CenterOverviewRow, 0, len(centers))
	for _, center := range centers {
		row, err := ctrl.overviewRow(center)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center statistics")
		}
		rows = append(rows, *row)
	}

	return helper.Success(c, "Centers fetched successfully", rows)
}

// GET /api/superadmin/centers/:center_id/stats
func (ctrl *SuperAdminController) CenterStats(c *fiber.Ctx) error {
	if _, err := helper.GetSuperAdminIDFromToken(c); err != nil {
		return err
	}

	centerID, err := uuid.Parse(c.Params("center_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid center ID")
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	row, err := ctrl.overviewRow(center)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center statistics")
	}

	resp := superAdminDTO.CenterStatsResponse{CenterOverviewRow: *row}

	var first sql.NullTime
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ?", center.CenterID).
		Select("MIN(attendance_date)").
		Scan(&first).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center statistics")
	}
	if first.Valid {
		s := first.Time.Format("2006-01-02")
		resp.FirstAttendanceDate = &s
	}

	monthAgo := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ? AND attendance_date >= ?", center.CenterID, monthAgo).
		Select("COUNT(DISTINCT attendance_date)").
		Scan(&resp.ActiveDaysLastMonth).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center statistics")
	}
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ? AND attendance_date >= ?", center.CenterID, monthAgo).
		Select("COUNT(*)").
		Scan(&resp.AttendancesLastMonth).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center statistics")
	}

	return helper.Success(c, "Center statistics fetched", resp)
}

func (ctrl *SuperAdminController) overviewRow(center centerModel.CenterModel) (*superAdminDTO.CenterOverviewRow, error) {
	row := superAdminDTO.CenterOverviewRow{
		CenterID:          center.CenterID,
		CenterCode:        center.CenterCode,
		Name:              center.CenterName,
		Address:           center.CenterAddress,
		Contact:           center.CenterContact,
		CreatedAt:         center.CenterCreatedAt,
		PasswordProtected: center.CenterAttendancePasswordEnabled,
	}

	if err := ctrl.DB.Table("students").
		Where("student_center_id = ?", center.CenterID).
		Count(&row.StudentCount).Error; err != nil {
		return nil, err
	}
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ?", center.CenterID).
		Select("COUNT(DISTINCT attendance_date)").
		Scan(&row.AttendanceDays).Error; err != nil {
		return nil, err
	}
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ?", center.CenterID).
		Count(&row.TotalAttendances).Error; err != nil {
		return nil, err
	}

	var last sql.NullTime
	if err := ctrl.DB.Table("attendances").
		Where("attendance_center_id = ?", center.CenterID).
		Select("MAX(attendance_date)").
		Scan(&last).Error; err != nil {
		return nil, err
	}
	if last.Valid {
		s := last.Time.Format("2006-01-02")
		row.LastActivityDate = &s
	}

	return &row, nil
}

// PUT /api/superadmin/centers/:center_id/password
// Lets the oversight account recover a center whose sister forgot the login.
func (ctrl *SuperAdminController) ResetCenterPassword(c *fiber.Ctx) error {
	if _, err := helper.GetSuperAdminIDFromToken(c); err != nil {
		return err
	}

	centerID, err := uuid.Parse(c.Params("center_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid center ID")
	}

	var req superAdminDTO.ResetCenterPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var center centerModel.CenterModel
	if err := ctrl.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset password")
	}
	if err := ctrl.DB.Model(&center).Update("center_password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.Success(c, "Center password reset successfully", centerDTO.FromCenterModel(center))
}
