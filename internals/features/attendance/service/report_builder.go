package service

import (
	"fmt"
	"time"

	attendanceDTO "omshanti_backend/internals/features/attendance/dto"
	studentModel "omshanti_backend/internals/features/students/model"

	"github.com/google/uuid"
)

// Pure shaping over rows the report service has already fetched. The left
// join is realized here: every roster entry produces a row, presence
// defaulting to absent.

func BuildDailyRows(students []studentModel.StudentModel, present map[uuid.UUID]bool) []attendanceDTO.DailyReportRow {
	presentCount := int64(0)
	for _, s := range students {
		if present[s.StudentID] {
			presentCount++
		}
	}
	totalCount := int64(len(students))

	rows := make([]attendanceDTO.DailyReportRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, attendanceDTO.DailyReportRow{
			StudentID:            s.StudentID,
			RollNumber:           s.StudentRollNumber,
			Name:                 s.StudentName,
			Type:                 s.StudentType,
			Gender:               s.StudentGender,
			Age:                  s.StudentAge,
			IsPresent:            present[s.StudentID],
			PresentStudentsCount: presentCount,
			TotalStudentsCount:   totalCount,
		})
	}
	return rows
}

func BuildWeeklyRows(students []studentModel.StudentModel, counts map[uuid.UUID]int64, totalDays int) []attendanceDTO.WeeklyReportRow {
	rows := make([]attendanceDTO.WeeklyReportRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, attendanceDTO.WeeklyReportRow{
			StudentID:   s.StudentID,
			RollNumber:  s.StudentRollNumber,
			Name:        s.StudentName,
			Type:        s.StudentType,
			DaysPresent: counts[s.StudentID],
			TotalDays:   totalDays,
		})
	}
	return rows
}

func BuildMonthlySummaryRows(students []studentModel.StudentModel, counts map[uuid.UUID]int64, daysInMonth int) []attendanceDTO.MonthlySummaryRow {
	rows := make([]attendanceDTO.MonthlySummaryRow, 0, len(students))
	for _, s := range students {
		present := counts[s.StudentID]
		rows = append(rows, attendanceDTO.MonthlySummaryRow{
			StudentID:   s.StudentID,
			RollNumber:  s.StudentRollNumber,
			Name:        s.StudentName,
			Type:        s.StudentType,
			DaysPresent: present,
			DaysAbsent:  int64(daysInMonth) - present,
			TotalDays:   daysInMonth,
		})
	}
	return rows
}

// BuildMonthlyGridRows walks every calendar day of the month per student and
// checks membership in that student's fact-date set.
func BuildMonthlyGridRows(students []studentModel.StudentModel, factDates map[uuid.UUID][]time.Time, year, month int) []attendanceDTO.MonthlyGridRow {
	days := DaysInMonth(year, month)

	rows := make([]attendanceDTO.MonthlyGridRow, 0, len(students))
	for _, s := range students {
		presentSet := make(map[string]bool, len(factDates[s.StudentID]))
		for _, d := range factDates[s.StudentID] {
			presentSet[formatDate(d)] = true
		}

		daily := make([]attendanceDTO.DayStatus, 0, days)
		totalPresent := 0
		for day := 1; day <= days; day++ {
			dateStr := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			present := presentSet[dateStr]
			if present {
				totalPresent++
			}
			daily = append(daily, attendanceDTO.DayStatus{Date: dateStr, Present: present})
		}

		rows = append(rows, attendanceDTO.MonthlyGridRow{
			StudentID:    s.StudentID,
			RollNumber:   s.StudentRollNumber,
			Name:         s.StudentName,
			Type:         s.StudentType,
			Attendance:   daily,
			TotalPresent: totalPresent,
		})
	}
	return rows
}
