package service

import (
	"errors"
	"strings"
	"time"

	"omshanti_backend/internals/configs"
	"omshanti_backend/internals/constants"
	centerModel "omshanti_backend/internals/features/centers/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCenterCodeTaken    = errors.New("center code already registered")
	ErrInvalidCredentials = errors.New("invalid center code or password")
)

const tokenTTL = 24 * time.Hour

/* ===============================
   REGISTER / LOGIN
=============================== */

func RegisterCenter(db *gorm.DB, code, name, password string, address, contact *string) (*centerModel.CenterModel, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	center := centerModel.CenterModel{
		CenterCode:     code,
		CenterName:     strings.TrimSpace(name),
		CenterPassword: string(hashed),
		CenterAddress:  address,
		CenterContact:  contact,
	}
	if err := db.Create(&center).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCenterCodeTaken
		}
		return nil, err
	}
	return &center, nil
}

func LoginCenter(db *gorm.DB, code, password string) (*centerModel.CenterModel, string, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	var center centerModel.CenterModel
	if err := db.First(&center, "center_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(center.CenterPassword), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueCenterToken(center.CenterID, center.CenterCode)
	if err != nil {
		return nil, "", err
	}
	return &center, token, nil
}

// IssueCenterToken signs a 24h HS256 token carrying the center identity.
func IssueCenterToken(centerID uuid.UUID, centerCode string) (string, error) {
	claims := jwt.MapClaims{
		"center_id":   centerID.String(),
		"center_code": centerCode,
		"role":        constants.RoleCenter,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

/* ===============================
   PASSWORD CHANGE
=============================== */

func ChangeCenterPassword(db *gorm.DB, centerID uuid.UUID, currentPassword, newPassword string) error {
	var center centerModel.CenterModel
	if err := db.First(&center, "center_id = ?", centerID).Error; err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(center.CenterPassword), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Model(&center).Update("center_password", string(hashed)).Error
}
