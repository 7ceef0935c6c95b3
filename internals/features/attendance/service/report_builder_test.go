package service_test

import (
	"testing"
	"time"

	service "omshanti_backend/internals/features/attendance/service"
	studentModel "omshanti_backend/internals/features/students/model"

	"github.com/google/uuid"
)

func makeStudent(roll, name string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:         uuid.New(),
		StudentRollNumber: roll,
		StudentName:       name,
		StudentType:       "Kumar",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildDailyRowsIncludesAbsentees(t *testing.T) {
	s1 := makeStudent("001", "Asha")
	s2 := makeStudent("012", "Bharat")
	students := []studentModel.StudentModel{s1, s2}

	rows := service.BuildDailyRows(students, map[uuid.UUID]bool{s1.StudentID: true})

	if len(rows) != len(students) {
		t.Fatalf("row count = %d, want roster size %d", len(rows), len(students))
	}
	if !rows[0].IsPresent || rows[1].IsPresent {
		t.Fatalf("presence flags wrong: %+v", rows)
	}
	for _, r := range rows {
		if r.PresentStudentsCount != 1 || r.TotalStudentsCount != 2 {
			t.Fatalf("summary counts not uniform on row %q: present=%d total=%d",
				r.RollNumber, r.PresentStudentsCount, r.TotalStudentsCount)
		}
	}
}

func TestBuildDailyRowsEmptyRoster(t *testing.T) {
	rows := service.BuildDailyRows(nil, nil)
	if len(rows) != 0 {
		t.Fatalf("expected empty report, got %d rows", len(rows))
	}
}

func TestBuildWeeklyRowsBounds(t *testing.T) {
	s1 := makeStudent("001", "Asha")
	s2 := makeStudent("002", "Bharat")
	students := []studentModel.StudentModel{s1, s2}

	rows := service.BuildWeeklyRows(students, map[uuid.UUID]int64{s1.StudentID: 3}, 7)

	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.TotalDays != 7 {
			t.Fatalf("total_days not uniform: %+v", r)
		}
		if r.DaysPresent < 0 || r.DaysPresent > int64(r.TotalDays) {
			t.Fatalf("days_present out of bounds: %+v", r)
		}
	}
	if rows[0].DaysPresent != 3 || rows[1].DaysPresent != 0 {
		t.Fatalf("counts wrong: %+v", rows)
	}
}

func TestBuildMonthlySummaryRowsInvariant(t *testing.T) {
	s1 := makeStudent("001", "Asha")
	students := []studentModel.StudentModel{s1}

	// February 2024 is a leap month
	days := service.DaysInMonth(2024, 2)
	if days != 29 {
		t.Fatalf("DaysInMonth(2024, 2) = %d, want 29", days)
	}

	rows := service.BuildMonthlySummaryRows(students, map[uuid.UUID]int64{s1.StudentID: 10}, days)
	r := rows[0]
	if r.DaysPresent != 10 || r.DaysAbsent != 19 || r.TotalDays != 29 {
		t.Fatalf("summary math wrong: %+v", r)
	}
	if r.DaysPresent+r.DaysAbsent != int64(r.TotalDays) {
		t.Fatalf("present + absent != days in month: %+v", r)
	}
}

func TestBuildMonthlyGridRows(t *testing.T) {
	s1 := makeStudent("001", "Asha")
	s2 := makeStudent("002", "Bharat")
	students := []studentModel.StudentModel{s1, s2}

	facts := map[uuid.UUID][]time.Time{
		s1.StudentID: {day(2023, time.April, 15)},
	}

	rows := service.BuildMonthlyGridRows(students, facts, 2023, 4)

	for _, r := range rows {
		if len(r.Attendance) != 30 {
			t.Fatalf("grid length = %d, want 30 for April", len(r.Attendance))
		}
		trues := 0
		for _, d := range r.Attendance {
			if d.Present {
				trues++
			}
		}
		if trues != r.TotalPresent {
			t.Fatalf("total_present=%d but %d true entries", r.TotalPresent, trues)
		}
	}

	if rows[0].TotalPresent != 1 {
		t.Fatalf("student 001 total_present = %d, want 1", rows[0].TotalPresent)
	}
	if !rows[0].Attendance[14].Present {
		t.Fatal("day 15 (index 14) should be present for student 001")
	}
	if rows[0].Attendance[14].Date != "2023-04-15" {
		t.Fatalf("day 15 date = %q", rows[0].Attendance[14].Date)
	}
	if rows[1].TotalPresent != 0 {
		t.Fatalf("student 002 total_present = %d, want 0", rows[1].TotalPresent)
	}
}

func TestBuildMonthlyGridLeapFebruary(t *testing.T) {
	s := makeStudent("001", "Asha")
	rows := service.BuildMonthlyGridRows([]studentModel.StudentModel{s}, nil, 2024, 2)
	if len(rows[0].Attendance) != 29 {
		t.Fatalf("grid length = %d, want 29 for Feb 2024", len(rows[0].Attendance))
	}
}
