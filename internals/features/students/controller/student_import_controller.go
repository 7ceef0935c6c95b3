package controller

import (
	"fmt"
	"strings"

	"omshanti_backend/internals/constants"
	studentDTO "omshanti_backend/internals/features/students/dto"
	studentModel "omshanti_backend/internals/features/students/model"
	studentService "omshanti_backend/internals/features/students/service"
	helper "omshanti_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type StudentImportController struct {
	DB *gorm.DB
}

func NewStudentImportController(db *gorm.DB) *StudentImportController {
	return &StudentImportController{DB: db}
}

/* ===============================
   XLSX IMPORT
=============================== */

// POST /api/admin/students/import
// Expects a multipart file "file" with columns: Roll Number | Name | Type |
// Gender | Age. Row 1 is treated as a header. Rows are validated one by one;
// bad rows are reported and skipped, good rows are inserted.
func (ctrl *StudentImportController) ImportStudents(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File upload 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File is not a valid .xlsx workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read worksheet")
	}
	if len(rows) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "Worksheet has no data rows")
	}

	report := studentDTO.ImportReport{
		Errors:        []string{},
		AddedStudents: []studentDTO.ImportedStudent{},
	}
	seenRolls := map[string]bool{}
	seenNames := map[string]bool{}

	for i, row := range rows[1:] {
		rowNum := i + 2

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		name := cell(1)
		if len(name) < 2 {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: name must be at least 2 characters", rowNum))
			continue
		}
		if seenNames[name] {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: duplicate name %q in file", rowNum, name))
			continue
		}

		studentType := cell(2)
		if studentType == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: student type is required", rowNum))
			continue
		}
		if !constants.IsValidStudentType(studentType) {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: invalid student type %q", rowNum, studentType))
			continue
		}

		roll := cell(0)
		if roll != "" {
			normalized, err := helper.NormalizeRollNumber(roll)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: invalid roll number %q", rowNum, roll))
				continue
			}
			roll = normalized
			if seenRolls[roll] {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: duplicate roll number %s in file", rowNum, roll))
				continue
			}
			taken, err := studentService.RollTaken(ctrl.DB, centerID, roll, nil)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check roll number")
			}
			if taken {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: roll number %s is already assigned", rowNum, roll))
				continue
			}
		} else {
			// rows are inserted one by one, so each call sees the
			// previous row's roll already taken
			roll, err = studentService.NextRollNumber(ctrl.DB, centerID)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
				continue
			}
		}

		var gender *string
		if g := cell(3); g != "" {
			if g != "Male" && g != "Female" {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: gender must be Male or Female", rowNum))
				continue
			}
			gender = &g
		}

		var age *int
		if a := cell(4); a != "" {
			var n int
			if _, err := fmt.Sscanf(a, "%d", &n); err != nil || n < 1 || n > 120 {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: age must be a number between 1 and 120", rowNum))
				continue
			}
			age = &n
		}

		student := studentModel.StudentModel{
			StudentCenterID:   centerID,
			StudentRollNumber: roll,
			StudentName:       name,
			StudentType:       studentType,
			StudentGender:     gender,
			StudentAge:        age,
		}
		if err := ctrl.DB.Create(&student).Error; err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: failed to insert (%s)", rowNum, name))
			continue
		}

		seenRolls[roll] = true
		seenNames[name] = true
		report.SuccessCount++
		report.AddedStudents = append(report.AddedStudents, studentDTO.ImportedStudent{
			RollNumber: roll,
			Name:       name,
		})
	}
	report.ErrorCount = len(report.Errors)

	return helper.Success(c, fmt.Sprintf("Import finished: %d added, %d errors", report.SuccessCount, report.ErrorCount), report)
}

/* ===============================
   XLSX EXPORT
=============================== */

// GET /api/admin/students/export
func (ctrl *StudentImportController) ExportStudents(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_center_id = ?", centerID).
		Order("student_roll_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Roll Number", "Name", "Type", "Gender", "Age"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, s := range students {
		excelRow := rowIdx + 2
		values := []interface{}{s.StudentRollNumber, s.StudentName, s.StudentType}
		if s.StudentGender != nil {
			values = append(values, *s.StudentGender)
		} else {
			values = append(values, "")
		}
		if s.StudentAge != nil {
			values = append(values, *s.StudentAge)
		} else {
			values = append(values, "")
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, excelRow)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
