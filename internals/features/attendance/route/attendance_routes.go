package route

import (
	attendanceController "omshanti_backend/internals/features/attendance/controller"
	"omshanti_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public keypad endpoints, addressed by center code.
func AttendancePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/mark/:center_code", middlewares.KeypadRateLimiter(), ctrl.MarkByRoll)
	attendance.Get("/password-check/:center_code", ctrl.CheckGateStatus)
	attendance.Post("/verify-password/:center_code", middlewares.KeypadRateLimiter(), ctrl.VerifyGatePassword)
}

// Admin corrections and the reporting surface.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	reportCtrl := attendanceController.NewReportController(db)
	exportCtrl := attendanceController.NewReportExportController(db)

	admin.Post("/attendance/:student_id", ctrl.MarkByAdmin)
	admin.Delete("/attendance/:student_id", ctrl.UnmarkByAdmin)

	reports := admin.Group("/reports")
	reports.Get("/daily", reportCtrl.Daily)
	reports.Get("/weekly", reportCtrl.Weekly)
	reports.Get("/monthly", reportCtrl.MonthlyGrid)
	reports.Get("/monthly/export", exportCtrl.ExportMonthlyGrid)
	reports.Get("/monthly-summary", reportCtrl.MonthlySummary)
	reports.Get("/monthly-summary/export", exportCtrl.ExportMonthlySummary)
	reports.Get("/student/:student_id", reportCtrl.Student)
}
