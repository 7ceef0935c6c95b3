package service_test

import (
	"testing"

	service "omshanti_backend/internals/features/attendance/service"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap
		{2023, 2, 28},
		{2000, 2, 29}, // century leap
		{1900, 2, 28}, // century non-leap
		{2023, 4, 30},
		{2023, 12, 31},
		{2024, 1, 31},
	}
	for _, c := range cases {
		if got := service.DaysInMonth(c.year, c.month); got != c.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestParseReportDateStrictFormat(t *testing.T) {
	if _, err := service.ParseReportDate("2024-02-29"); err != nil {
		t.Fatalf("valid leap date rejected: %v", err)
	}
	for _, bad := range []string{"", "2024-2-9", "09-02-2024", "2024/02/09", "2023-02-29", "yesterday"} {
		if _, err := service.ParseReportDate(bad); err == nil {
			t.Fatalf("ParseReportDate(%q): expected error", bad)
		}
	}
}

func TestValidateRangeRejectsInvertedWindow(t *testing.T) {
	if _, _, err := service.ValidateRange("2024-02-07", "2024-02-01"); err == nil {
		t.Fatal("inverted range accepted")
	}
	start, end, err := service.ValidateRange("2024-02-01", "2024-02-07")
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if got := service.InclusiveDayCount(start, end); got != 7 {
		t.Fatalf("InclusiveDayCount = %d, want 7", got)
	}
}

func TestValidateRangeSingleDayWindow(t *testing.T) {
	start, end, err := service.ValidateRange("2024-03-15", "2024-03-15")
	if err != nil {
		t.Fatalf("single-day range rejected: %v", err)
	}
	if got := service.InclusiveDayCount(start, end); got != 1 {
		t.Fatalf("InclusiveDayCount = %d, want 1", got)
	}
}

func TestValidateMonth(t *testing.T) {
	if err := service.ValidateMonth(2024, 2); err != nil {
		t.Fatalf("valid month rejected: %v", err)
	}
	for _, c := range []struct{ year, month int }{
		{2024, 0}, {2024, 13}, {99, 1}, {12345, 6},
	} {
		if err := service.ValidateMonth(c.year, c.month); err == nil {
			t.Fatalf("ValidateMonth(%d, %d): expected error", c.year, c.month)
		}
	}
}
