package service

import (
	"time"
)

const dateLayout = "2006-01-02"

// DaysInMonth returns the calendar length of a month, leap-year correct.
func DaysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseReportDate parses a strict YYYY-MM-DD date.
func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidReportParams
	}
	return t, nil
}

// ValidateRange parses an inclusive window and rejects end < start.
func ValidateRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = ParseReportDate(startStr)
	if err != nil {
		return
	}
	end, err = ParseReportDate(endStr)
	if err != nil {
		return
	}
	if end.Before(start) {
		err = ErrInvalidReportParams
	}
	return
}

// ValidateMonth rejects months outside the calendar and implausible years.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidReportParams
	}
	if year < 1000 || year > 9999 {
		return ErrInvalidReportParams
	}
	return nil
}

// InclusiveDayCount is end - start + 1 in whole calendar days.
func InclusiveDayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func monthBounds(year, month int) (startStr, endStr string) {
	days := DaysInMonth(year, month)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), days, 0, 0, 0, 0, time.UTC)
	return formatDate(start), formatDate(end)
}
