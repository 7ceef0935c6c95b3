package controller

import (
	"errors"

	attendanceService "omshanti_backend/internals/features/attendance/service"
	helper "omshanti_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func reportError(err error) error {
	switch {
	case errors.Is(err, attendanceService.ErrInvalidReportParams):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid report parameters")
	case errors.Is(err, attendanceService.ErrStudentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build report")
	}
}

// GET /api/admin/reports/daily?date=YYYY-MM-DD
func (ctrl *ReportController) Daily(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	date := c.Query("date")
	if date == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'date' is required (YYYY-MM-DD)")
	}

	resp, err := attendanceService.DailyReport(ctrl.DB, centerID, date)
	if err != nil {
		return reportError(err)
	}
	return helper.Success(c, "Daily report generated", resp)
}

// GET /api/admin/reports/student/:student_id
func (ctrl *ReportController) Student(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	resp, err := attendanceService.StudentReport(ctrl.DB, centerID, studentID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return reportError(err)
	}
	return helper.Success(c, "Student report generated", resp)
}

// GET /api/admin/reports/weekly?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (ctrl *ReportController) Weekly(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameters 'start_date' and 'end_date' are required (YYYY-MM-DD)")
	}

	resp, err := attendanceService.WeeklyReport(ctrl.DB, centerID, startDate, endDate)
	if err != nil {
		return reportError(err)
	}
	return helper.Success(c, "Weekly report generated", resp)
}

// GET /api/admin/reports/monthly?year=YYYY&month=M
func (ctrl *ReportController) MonthlyGrid(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")

	resp, err := attendanceService.MonthlyGridReport(ctrl.DB, centerID, year, month)
	if err != nil {
		return reportError(err)
	}
	return helper.Success(c, "Monthly report generated", resp)
}

// GET /api/admin/reports/monthly-summary?year=YYYY&month=M
func (ctrl *ReportController) MonthlySummary(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")

	resp, err := attendanceService.MonthlySummaryReport(ctrl.DB, centerID, year, month)
	if err != nil {
		return reportError(err)
	}
	return helper.Success(c, "Monthly summary generated", resp)
}
