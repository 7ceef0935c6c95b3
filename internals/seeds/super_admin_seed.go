package seeds

import (
	"omshanti_backend/internals/configs"
	superAdminModel "omshanti_backend/internals/features/superadmin/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the default oversight account on first boot.
// Credentials come from env so deployments never ship the defaults.
func SeedSuperAdmin(db *gorm.DB) error {
	username := configs.GetEnv("SUPERADMIN_USERNAME", "superadmin")
	password := configs.GetEnv("SUPERADMIN_PASSWORD", "meditation123")

	var count int64
	if err := db.Model(&superAdminModel.SuperAdminModel{}).
		Where("super_admin_username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := superAdminModel.SuperAdminModel{
		SuperAdminUsername: username,
		SuperAdminPassword: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	configs.GetLogger().WithFields(logrus.Fields{
		"username": username,
	}).Info("seeded default super admin account")
	return nil
}
