package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentCenterID uuid.UUID `gorm:"type:uuid;not null;column:student_center_id;index:idx_students_center;uniqueIndex:uq_students_center_roll,priority:1" json:"student_center_id"`

	// Canonical 3-digit zero-padded form; normalization happens before writes.
	StudentRollNumber string `gorm:"type:varchar(3);not null;column:student_roll_number;uniqueIndex:uq_students_center_roll,priority:2" json:"student_roll_number"`

	StudentName   string  `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentType   string  `gorm:"type:varchar(20);not null;column:student_type" json:"student_type"`
	StudentGender *string `gorm:"type:varchar(10);column:student_gender" json:"student_gender,omitempty"`
	StudentAge    *int    `gorm:"column:student_age" json:"student_age,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
