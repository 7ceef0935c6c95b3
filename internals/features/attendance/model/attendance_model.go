package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One row per (student, calendar date). Presence is boolean per day, never a
// count; the unique index is the enforcement mechanism for concurrent marks.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id;uniqueIndex:uq_attendance_student_date,priority:1" json:"attendance_student_id"`

	// Denormalized tenant key so range scans never join through students.
	AttendanceCenterID uuid.UUID `gorm:"type:uuid;not null;column:attendance_center_id;index:idx_attendance_center_date,priority:1" json:"attendance_center_id"`

	AttendanceDate datatypes.Date `gorm:"not null;column:attendance_date;uniqueIndex:uq_attendance_student_date,priority:2;index:idx_attendance_center_date,priority:2" json:"-"`

	// Wall clock of the keypad entry, informational only.
	AttendanceMarkedAt *time.Time `gorm:"column:attendance_marked_at" json:"attendance_marked_at,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
