package dto

import (
	"time"

	model "omshanti_backend/internals/features/students/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// Roll number is optional on create; the next free one is assigned when
// absent. Type is checked against the roster's valid types in the
// controller (the values contain spaces, which oneof cannot express).
type CreateStudentRequest struct {
	RollNumber string  `json:"roll_number" validate:"omitempty,len=3,numeric"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Type       string  `json:"type" validate:"required"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Age        *int    `json:"age" validate:"omitempty,gte=1,lte=120"`
}

type UpdateStudentRequest struct {
	RollNumber string  `json:"roll_number" validate:"omitempty,len=3,numeric"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Type       string  `json:"type" validate:"required"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Age        *int    `json:"age" validate:"omitempty,gte=1,lte=120"`
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentID  uuid.UUID  `json:"student_id"`
	RollNumber string     `json:"roll_number"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Gender     *string    `json:"gender,omitempty"`
	Age        *int       `json:"age,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:  m.StudentID,
		RollNumber: m.StudentRollNumber,
		Name:       m.StudentName,
		Type:       m.StudentType,
		Gender:     m.StudentGender,
		Age:        m.StudentAge,
		CreatedAt:  m.StudentCreatedAt,
		UpdatedAt:  m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}

// Conflict payload when a name already exists on the roster.
type DuplicateNameResponse struct {
	Message          string            `json:"message"`
	ExistingStudents []StudentResponse `json:"existing_students"`
	Suggestions      []string          `json:"suggestions"`
}

/* ===================== IMPORT ===================== */

type ImportedStudent struct {
	RollNumber string `json:"roll_number"`
	Name       string `json:"name"`
}

type ImportReport struct {
	SuccessCount  int               `json:"success_count"`
	ErrorCount    int               `json:"error_count"`
	Errors        []string          `json:"errors"`
	AddedStudents []ImportedStudent `json:"added_students"`
}
