package service

import (
	"errors"
	"time"

	attendanceDTO "omshanti_backend/internals/features/attendance/dto"
	attendanceModel "omshanti_backend/internals/features/attendance/model"
	studentModel "omshanti_backend/internals/features/students/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every report shares one read shape: the full tenant roster left-joined
// against facts in the window, so absentees always appear. Validation
// happens before any storage round trip; an empty roster yields an empty
// report, never an error.

func roster(db *gorm.DB, centerID uuid.UUID) ([]studentModel.StudentModel, error) {
	var students []studentModel.StudentModel
	err := db.
		Where("student_center_id = ?", centerID).
		Order("student_roll_number ASC").
		Find(&students).Error
	return students, err
}

type studentCount struct {
	StudentID uuid.UUID `gorm:"column:student_id"`
	Cnt       int64     `gorm:"column:cnt"`
}

func presenceCounts(db *gorm.DB, centerID uuid.UUID, startStr, endStr string) (map[uuid.UUID]int64, error) {
	var rows []studentCount
	err := db.Model(&attendanceModel.AttendanceModel{}).
		Select("attendance_student_id AS student_id, COUNT(*) AS cnt").
		Where("attendance_center_id = ? AND attendance_date BETWEEN ? AND ?", centerID, startStr, endStr).
		Group("attendance_student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.StudentID] = r.Cnt
	}
	return counts, nil
}

/* ===============================
   DAILY
=============================== */

func DailyReport(db *gorm.DB, centerID uuid.UUID, dateStr string) (*attendanceDTO.DailyReportResponse, error) {
	if _, err := ParseReportDate(dateStr); err != nil {
		return nil, err
	}

	students, err := roster(db, centerID)
	if err != nil {
		return nil, err
	}

	var facts []attendanceModel.AttendanceModel
	if err := db.
		Where("attendance_center_id = ? AND attendance_date = ?", centerID, dateStr).
		Find(&facts).Error; err != nil {
		return nil, err
	}

	present := make(map[uuid.UUID]bool, len(facts))
	for _, f := range facts {
		present[f.AttendanceStudentID] = true
	}

	return &attendanceDTO.DailyReportResponse{
		Date:       dateStr,
		Attendance: BuildDailyRows(students, present),
	}, nil
}

/* ===============================
   PER-STUDENT
=============================== */

func StudentReport(db *gorm.DB, centerID, studentID uuid.UUID, startStr, endStr string) (*attendanceDTO.StudentReportResponse, error) {
	if startStr != "" && endStr != "" {
		if _, _, err := ValidateRange(startStr, endStr); err != nil {
			return nil, err
		}
	} else if startStr != "" {
		if _, err := ParseReportDate(startStr); err != nil {
			return nil, err
		}
	} else if endStr != "" {
		if _, err := ParseReportDate(endStr); err != nil {
			return nil, err
		}
	}

	var student studentModel.StudentModel
	if err := db.
		First(&student, "student_id = ? AND student_center_id = ?", studentID, centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	q := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID)
	if startStr != "" {
		q = q.Where("attendance_date >= ?", startStr)
	}
	if endStr != "" {
		q = q.Where("attendance_date <= ?", endStr)
	}

	var dates []time.Time
	if err := q.Order("attendance_date DESC").Pluck("attendance_date", &dates).Error; err != nil {
		return nil, err
	}

	dateStrs := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrs = append(dateStrs, formatDate(d))
	}

	return &attendanceDTO.StudentReportResponse{
		Student: attendanceDTO.StudentReportStudent{
			StudentID:  student.StudentID,
			RollNumber: student.StudentRollNumber,
			Name:       student.StudentName,
		},
		Dates:     dateStrs,
		TotalDays: len(dateStrs),
	}, nil
}

/* ===============================
   WEEKLY
=============================== */

func WeeklyReport(db *gorm.DB, centerID uuid.UUID, startStr, endStr string) (*attendanceDTO.WeeklyReportResponse, error) {
	start, end, err := ValidateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	students, err := roster(db, centerID)
	if err != nil {
		return nil, err
	}

	counts, err := presenceCounts(db, centerID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	return &attendanceDTO.WeeklyReportResponse{
		StartDate: startStr,
		EndDate:   endStr,
		Report:    BuildWeeklyRows(students, counts, InclusiveDayCount(start, end)),
	}, nil
}

/* ===============================
   MONTHLY SUMMARY
=============================== */

func MonthlySummaryReport(db *gorm.DB, centerID uuid.UUID, year, month int) (*attendanceDTO.MonthlySummaryResponse, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}

	students, err := roster(db, centerID)
	if err != nil {
		return nil, err
	}

	startStr, endStr := monthBounds(year, month)
	counts, err := presenceCounts(db, centerID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	days := DaysInMonth(year, month)
	return &attendanceDTO.MonthlySummaryResponse{
		Summary:     BuildMonthlySummaryRows(students, counts, days),
		Month:       month,
		Year:        year,
		DaysInMonth: days,
	}, nil
}

/* ===============================
   MONTHLY GRID
=============================== */

func MonthlyGridReport(db *gorm.DB, centerID uuid.UUID, year, month int) (*attendanceDTO.MonthlyGridResponse, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}

	students, err := roster(db, centerID)
	if err != nil {
		return nil, err
	}

	startStr, endStr := monthBounds(year, month)
	var facts []attendanceModel.AttendanceModel
	if err := db.
		Where("attendance_center_id = ? AND attendance_date BETWEEN ? AND ?", centerID, startStr, endStr).
		Find(&facts).Error; err != nil {
		return nil, err
	}

	factDates := make(map[uuid.UUID][]time.Time, len(students))
	for _, f := range facts {
		factDates[f.AttendanceStudentID] = append(factDates[f.AttendanceStudentID], time.Time(f.AttendanceDate))
	}

	return &attendanceDTO.MonthlyGridResponse{
		Students:    BuildMonthlyGridRows(students, factDates, year, month),
		Month:       month,
		Year:        year,
		DaysInMonth: DaysInMonth(year, month),
	}, nil
}
