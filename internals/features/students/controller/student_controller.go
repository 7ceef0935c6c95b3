package controller

import (
	"errors"
	"strings"

	attendanceModel "omshanti_backend/internals/features/attendance/model"
	studentDTO "omshanti_backend/internals/features/students/dto"
	studentModel "omshanti_backend/internals/features/students/model"
	studentService "omshanti_backend/internals/features/students/service"
	helper "omshanti_backend/internals/helpers"

	"omshanti_backend/internals/constants"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===============================
   CREATE
=============================== */

// POST /api/admin/students
// Duplicate names get a 409 with suggestions unless allow_duplicate=true.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidStudentType(req.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student type")
	}

	if c.Query("allow_duplicate") != "true" {
		exists, names, err := studentService.NameExists(ctrl.DB, centerID, req.Name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check for duplicate names")
		}
		if exists {
			var existing []studentModel.StudentModel
			if err := ctrl.DB.
				Where("student_center_id = ? AND student_name = ?", centerID, req.Name).
				Find(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check for duplicate names")
			}
			return c.Status(fiber.StatusConflict).JSON(studentDTO.DuplicateNameResponse{
				Message:          "A student with this name already exists",
				ExistingStudents: studentDTO.FromStudentModels(existing),
				Suggestions:      studentService.GenerateNameSuggestions(req.Name, names),
			})
		}
	}

	roll := req.RollNumber
	if roll == "" {
		roll, err = studentService.NextRollNumber(ctrl.DB, centerID)
		if err != nil {
			if errors.Is(err, studentService.ErrRosterFull) {
				return fiber.NewError(fiber.StatusConflict, "All roll numbers (000-999) are assigned")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign a roll number")
		}
	} else {
		taken, err := studentService.RollTaken(ctrl.DB, centerID, roll, nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check roll number")
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "Roll number "+roll+" is already assigned")
		}
	}

	student := studentModel.StudentModel{
		StudentCenterID:   centerID,
		StudentRollNumber: roll,
		StudentName:       req.Name,
		StudentType:       req.Type,
		StudentGender:     req.Gender,
		StudentAge:        req.Age,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Roll number "+roll+" is already assigned")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created successfully", studentDTO.FromStudentModel(student))
}

/* ===============================
   READ
=============================== */

// GET /api/admin/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
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

	return helper.Success(c, "Students fetched successfully", studentDTO.FromStudentModels(students))
}

// GET /api/admin/students/:student_id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_center_id = ?", studentID, centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return helper.Success(c, "Student fetched successfully", studentDTO.FromStudentModel(student))
}

// GET /api/admin/students/by-roll/:roll_number
// Accepts raw keypad forms ("2", "02", "0 0 2") and resolves them to the
// canonical roll.
func (ctrl *StudentController) GetStudentByRoll(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	student, err := studentService.FindByNormalizedRoll(ctrl.DB, centerID, c.Params("roll_number"))
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrInvalidRollNumber):
			return fiber.NewError(fiber.StatusBadRequest, "Roll number must contain only digits (000-999)")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
		}
	}

	return helper.Success(c, "Student fetched successfully", studentDTO.FromStudentModel(*student))
}

// GET /api/admin/students/search?q=term
// Digit-only terms are normalized and matched against the roll number,
// anything else matches the name case-insensitively.
func (ctrl *StudentController) SearchStudents(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'q' is required")
	}

	q := ctrl.DB.Where("student_center_id = ?", centerID)
	if roll, err := helper.NormalizeRollNumber(term); err == nil {
		q = q.Where("student_roll_number = ? OR student_name ILIKE ?", roll, "%"+term+"%")
	} else {
		q = q.Where("student_name ILIKE ?", "%"+term+"%")
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_roll_number ASC").Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to search students")
	}

	return helper.Success(c, "Search completed", studentDTO.FromStudentModels(students))
}

/* ===============================
   UPDATE / DELETE
=============================== */

// PUT /api/admin/students/:student_id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidStudentType(req.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student type")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_center_id = ?", studentID, centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if req.RollNumber != "" && req.RollNumber != student.StudentRollNumber {
		taken, err := studentService.RollTaken(ctrl.DB, centerID, req.RollNumber, &studentID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check roll number")
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "Roll number "+req.RollNumber+" is already assigned")
		}
		student.StudentRollNumber = req.RollNumber
	}

	student.StudentName = req.Name
	student.StudentType = req.Type
	student.StudentGender = req.Gender
	student.StudentAge = req.Age

	if err := ctrl.DB.Save(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Roll number is already assigned")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.Success(c, "Student updated successfully", studentDTO.FromStudentModel(student))
}

// DELETE /api/admin/students/:student_id
// Attendance facts go with the student; both writes share one transaction.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	centerID, err := helper.GetCenterIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_center_id = ?", studentID, centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_student_id = ?", studentID).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.Success(c, "Student deleted successfully", fiber.Map{
		"student_id":  student.StudentID,
		"roll_number": student.StudentRollNumber,
	})
}
