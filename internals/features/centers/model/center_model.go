package model

import (
	"time"

	"github.com/google/uuid"
)

type CenterModel struct {
	CenterID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:center_id" json:"center_id"`

	// Caller-chosen tenant key, used in the keypad link.
	CenterCode string `gorm:"type:varchar(50);not null;uniqueIndex:uq_centers_code;column:center_code" json:"center_code"`

	CenterName     string  `gorm:"type:varchar(100);not null;column:center_name" json:"center_name"`
	CenterPassword string  `gorm:"type:varchar(100);not null;column:center_password" json:"-"`
	CenterAddress  *string `gorm:"type:varchar(255);column:center_address" json:"center_address,omitempty"`
	CenterContact  *string `gorm:"type:varchar(50);column:center_contact" json:"center_contact,omitempty"`

	// Optional shared secret gating the self-service keypad.
	CenterAttendancePassword        *string `gorm:"type:varchar(100);column:center_attendance_password" json:"-"`
	CenterAttendancePasswordEnabled bool    `gorm:"not null;default:false;column:center_attendance_password_enabled" json:"center_attendance_password_enabled"`

	CenterCreatedAt time.Time  `gorm:"column:center_created_at;autoCreateTime" json:"center_created_at"`
	CenterUpdatedAt *time.Time `gorm:"column:center_updated_at;autoUpdateTime" json:"center_updated_at,omitempty"`
}

func (CenterModel) TableName() string {
	return "centers"
}
