package dto

import (
	"time"

	model "omshanti_backend/internals/features/centers/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type RegisterCenterRequest struct {
	CenterCode string  `json:"center_code" validate:"required,min=3,max=50,excludesall= /"`
	Name       string  `json:"name" validate:"required,min=3,max=100"`
	Password   string  `json:"password" validate:"required,min=6,max=100"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	Contact    *string `json:"contact" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	CenterCode string `json:"center_code" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    string  `json:"name" validate:"required,min=3,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Contact *string `json:"contact" validate:"omitempty,max=50"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=100"`
}

// Keypad gate settings. Password is required whenever the gate is enabled.
type GateSettingsRequest struct {
	AttendancePassword        string `json:"attendance_password" validate:"omitempty,max=100"`
	AttendancePasswordEnabled bool   `json:"attendance_password_enabled"`
}

/* ===================== RESPONSES ===================== */

type CenterResponse struct {
	CenterID   uuid.UUID  `json:"center_id"`
	CenterCode string     `json:"center_code"`
	Name       string     `json:"name"`
	Address    *string    `json:"address,omitempty"`
	Contact    *string    `json:"contact,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func FromCenterModel(m model.CenterModel) CenterResponse {
	return CenterResponse{
		CenterID:   m.CenterID,
		CenterCode: m.CenterCode,
		Name:       m.CenterName,
		Address:    m.CenterAddress,
		Contact:    m.CenterContact,
		CreatedAt:  m.CenterCreatedAt,
		UpdatedAt:  m.CenterUpdatedAt,
	}
}

type LoginResponse struct {
	Center CenterResponse `json:"center"`
	Token  string         `json:"token"`
}

type GateSettingsResponse struct {
	AttendancePassword        string `json:"attendance_password"`
	AttendancePasswordEnabled bool   `json:"attendance_password_enabled"`
}

// Public shape for the keypad page: no secrets, just whether a gate is up.
type GateStatusResponse struct {
	CenterCode        string `json:"center_code"`
	CenterName        string `json:"center_name"`
	PasswordProtected bool   `json:"password_protected"`
}
