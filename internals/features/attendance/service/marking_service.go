package service

import (
	"errors"
	"time"

	attendanceModel "omshanti_backend/internals/features/attendance/model"
	studentModel "omshanti_backend/internals/features/students/model"
	helper "omshanti_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MarkResult struct {
	StudentID     uuid.UUID
	StudentName   string
	Date          string
	AlreadyMarked bool
}

// ResolveMarkDate turns an optional YYYY-MM-DD input into a concrete day,
// defaulting to today in server-local terms.
func ResolveMarkDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return ParseReportDate(dateStr)
}

// MarkPresentByRoll serves the keypad flow: normalize the raw entry, resolve
// it within the tenant, then insert-if-absent.
func MarkPresentByRoll(db *gorm.DB, centerID uuid.UUID, rawRoll, dateStr string) (*MarkResult, error) {
	roll, err := helper.NormalizeRollNumber(rawRoll)
	if err != nil {
		return nil, err
	}

	date, err := ResolveMarkDate(dateStr)
	if err != nil {
		return nil, err
	}

	var student studentModel.StudentModel
	if err := db.
		First(&student, "student_center_id = ? AND student_roll_number = ?", centerID, roll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return markPresent(db, student, date)
}

// MarkPresentByStudent serves the admin flow with an already-resolved id.
// The student lookup is tenant-scoped, so a foreign id reads as not found.
func MarkPresentByStudent(db *gorm.DB, centerID, studentID uuid.UUID, dateStr string) (*MarkResult, error) {
	date, err := ResolveMarkDate(dateStr)
	if err != nil {
		return nil, err
	}

	var student studentModel.StudentModel
	if err := db.
		First(&student, "student_id = ? AND student_center_id = ?", studentID, centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return markPresent(db, student, date)
}

func markPresent(db *gorm.DB, student studentModel.StudentModel, date time.Time) (*MarkResult, error) {
	result := &MarkResult{
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
		Date:        formatDate(date),
	}

	var existing int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_date = ?", student.StudentID, formatDate(date)).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		result.AlreadyMarked = true
		return result, nil
	}

	now := time.Now()
	fact := attendanceModel.AttendanceModel{
		AttendanceStudentID: student.StudentID,
		AttendanceCenterID:  student.StudentCenterID,
		AttendanceDate:      datatypes.Date(date),
		AttendanceMarkedAt:  &now,
	}
	if err := db.Create(&fact).Error; err != nil {
		// lost the race against a concurrent mark for the same day;
		// the unique index guarantees a single fact either way
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			result.AlreadyMarked = true
			return result, nil
		}
		return nil, err
	}

	return result, nil
}

// Unmark removes the fact for (student, date). Zero rows removed is a valid
// terminal state, not a failure.
func Unmark(db *gorm.DB, centerID, studentID uuid.UUID, dateStr string) (int64, error) {
	date, err := ParseReportDate(dateStr)
	if err != nil {
		return 0, err
	}

	res := db.
		Where("attendance_student_id = ? AND attendance_center_id = ? AND attendance_date = ?",
			studentID, centerID, formatDate(date)).
		Delete(&attendanceModel.AttendanceModel{})
	return res.RowsAffected, res.Error
}
