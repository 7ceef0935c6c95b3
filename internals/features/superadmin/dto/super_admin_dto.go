package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=100"`
}

type ResetCenterPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	SuperAdminID uuid.UUID `json:"super_admin_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Token        string    `json:"token"`
}

// One row per registered center on the oversight dashboard.
type CenterOverviewRow struct {
	CenterID          uuid.UUID `json:"center_id"`
	CenterCode        string    `json:"center_code"`
	Name              string    `json:"name"`
	Address           *string   `json:"address,omitempty"`
	Contact           *string   `json:"contact,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	StudentCount      int64     `json:"student_count"`
	AttendanceDays    int64     `json:"attendance_days"`
	TotalAttendances  int64     `json:"total_attendances"`
	LastActivityDate  *string   `json:"last_activity_date,omitempty"`
	PasswordProtected bool      `json:"password_protected"`
}

type CenterStatsResponse struct {
	CenterOverviewRow

	FirstAttendanceDate  *string `json:"first_attendance_date,omitempty"`
	ActiveDaysLastMonth  int64   `json:"active_days_last_month"`
	AttendancesLastMonth int64   `json:"attendances_last_month"`
}
