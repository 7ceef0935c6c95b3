package dto

import (
	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// Keypad flow: raw roll entry, optionally gated by the shared secret.
type MarkByRollRequest struct {
	RollNumber         string `json:"roll_number" validate:"required,max=10"`
	AttendancePassword string `json:"attendance_password" validate:"omitempty,max=100"`
}

// Admin flow: student already resolved, date optional (defaults to today).
type AdminMarkRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type UnmarkRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type VerifyGatePasswordRequest struct {
	AttendancePassword string `json:"attendance_password" validate:"required,max=100"`
}

/* ===================== MARK RESULT ===================== */

type MarkResponse struct {
	Message       string `json:"message"`
	StudentName   string `json:"student_name"`
	Date          string `json:"date"`
	AlreadyMarked bool   `json:"already_marked"`
}

/* ===================== DAILY REPORT ===================== */

type DailyReportRow struct {
	StudentID  uuid.UUID `json:"student_id"`
	RollNumber string    `json:"roll_number"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Gender     *string   `json:"gender,omitempty"`
	Age        *int      `json:"age,omitempty"`
	IsPresent  bool      `json:"is_present"`

	// Attached uniformly to every row so the caller can read the summary
	// from any row without a second query.
	PresentStudentsCount int64 `json:"present_students_count"`
	TotalStudentsCount   int64 `json:"total_students_count"`
}

type DailyReportResponse struct {
	Date       string           `json:"date"`
	Attendance []DailyReportRow `json:"attendance"`
}

/* ===================== STUDENT REPORT ===================== */

type StudentReportStudent struct {
	StudentID  uuid.UUID `json:"student_id"`
	RollNumber string    `json:"roll_number"`
	Name       string    `json:"name"`
}

type StudentReportResponse struct {
	Student   StudentReportStudent `json:"student"`
	Dates     []string             `json:"dates"`
	TotalDays int                  `json:"total_days"`
}

/* ===================== WEEKLY REPORT ===================== */

type WeeklyReportRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	RollNumber  string    `json:"roll_number"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	DaysPresent int64     `json:"days_present"`
	TotalDays   int       `json:"total_days"`
}

type WeeklyReportResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Report    []WeeklyReportRow `json:"report"`
}

/* ===================== MONTHLY SUMMARY ===================== */

type MonthlySummaryRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	RollNumber  string    `json:"roll_number"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	DaysPresent int64     `json:"days_present"`
	DaysAbsent  int64     `json:"days_absent"`
	TotalDays   int       `json:"total_days"`
}

type MonthlySummaryResponse struct {
	Summary     []MonthlySummaryRow `json:"summary"`
	Month       int                 `json:"month"`
	Year        int                 `json:"year"`
	DaysInMonth int                 `json:"days_in_month"`
}

/* ===================== MONTHLY GRID ===================== */

type DayStatus struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

type MonthlyGridRow struct {
	StudentID    uuid.UUID   `json:"student_id"`
	RollNumber   string      `json:"roll_number"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Attendance   []DayStatus `json:"attendance"`
	TotalPresent int         `json:"total_present"`
}

type MonthlyGridResponse struct {
	Students    []MonthlyGridRow `json:"students"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	DaysInMonth int              `json:"days_in_month"`
}
