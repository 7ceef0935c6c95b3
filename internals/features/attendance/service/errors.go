package service

import "errors"

var (
	// Raised before any storage access on malformed dates, inverted
	// ranges, or out-of-range months.
	ErrInvalidReportParams = errors.New("invalid report parameters")

	// The roll resolved to no student within the tenant.
	ErrStudentNotFound = errors.New("student not found")
)
