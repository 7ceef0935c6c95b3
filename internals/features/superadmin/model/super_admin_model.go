package model

import (
	"time"

	"github.com/google/uuid"
)

type SuperAdminModel struct {
	SuperAdminID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:super_admin_id" json:"super_admin_id"`

	SuperAdminUsername string `gorm:"type:varchar(50);not null;uniqueIndex:uq_super_admins_username;column:super_admin_username" json:"super_admin_username"`
	SuperAdminPassword string `gorm:"type:varchar(100);not null;column:super_admin_password" json:"-"`

	SuperAdminLastLoginAt *time.Time `gorm:"column:super_admin_last_login_at" json:"super_admin_last_login_at,omitempty"`

	SuperAdminCreatedAt time.Time  `gorm:"column:super_admin_created_at;autoCreateTime" json:"super_admin_created_at"`
	SuperAdminUpdatedAt *time.Time `gorm:"column:super_admin_updated_at;autoUpdateTime" json:"super_admin_updated_at,omitempty"`
}

func (SuperAdminModel) TableName() string {
	return "super_admins"
}
