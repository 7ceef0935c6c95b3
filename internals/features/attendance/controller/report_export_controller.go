package controller

import (
	"fmt"

	attendanceService "omshanti_backend/internals/features/attendance/service"
	helper "omshanti_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportExportController struct {
	DB *gorm.DB
}

func NewReportExportController(db *gorm.DB) *ReportExportController {
	return &ReportExportController{DB: db}
}

// GET /api/admin/reports/monthly/export?year=YYYY&month=M
// Streams the one-row-per-student monthly grid as an .xlsx workbook.
func (ctrl *ReportExportController) ExportMonthlyGrid(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")

	report, err := attendanceService.MonthlyGridReport(ctrl.DB, centerID, year, month)
	if err != nil {
		return reportError(err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Roll Number", "Name"}
	for day := 1; day <= report.DaysInMonth; day++ {
		headers = append(headers, fmt.Sprintf("%d", day))
	}
	headers = append(headers, "Total Present")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, row := range report.Students {
		excelRow := rowIdx + 2
		cell, _ := excelize.CoordinatesToCellName(1, excelRow)
		f.SetCellValue(sheet, cell, row.RollNumber)
		cell, _ = excelize.CoordinatesToCellName(2, excelRow)
		f.SetCellValue(sheet, cell, row.Name)
		for dayIdx, status := range row.Attendance {
			cell, _ = excelize.CoordinatesToCellName(3+dayIdx, excelRow)
			if status.Present {
				f.SetCellValue(sheet, cell, "P")
			}
		}
		cell, _ = excelize.CoordinatesToCellName(3+report.DaysInMonth, excelRow)
		f.SetCellValue(sheet, cell, row.TotalPresent)
	}

	filename := fmt.Sprintf("attendance_%04d_%02d.xlsx", report.Year, report.Month)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return f.Write(c.Response().BodyWriter())
}

// GET /api/admin/reports/monthly-summary/export?year=YYYY&month=M
func (ctrl *ReportExportController) ExportMonthlySummary(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")

	report, err := attendanceService.MonthlySummaryReport(ctrl.DB, centerID, year, month)
	if err != nil {
		return reportError(err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Roll Number", "Name", "Type", "Days Present", "Days Absent", "Attendance %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, row := range report.Summary {
		excelRow := rowIdx + 2
		percentage := 0.0
		if row.TotalDays > 0 {
			percentage = float64(row.DaysPresent) / float64(row.TotalDays) * 100
		}
		values := []interface{}{
			row.RollNumber,
			row.Name,
			row.Type,
			row.DaysPresent,
			row.DaysAbsent,
			fmt.Sprintf("%.1f%%", percentage),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, excelRow)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("attendance_summary_%04d_%02d.xlsx", report.Year, report.Month)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return f.Write(c.Response().BodyWriter())
}
