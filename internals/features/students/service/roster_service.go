package service

import (
	"database/sql"
	"errors"
	"fmt"

	studentModel "omshanti_backend/internals/features/students/model"
	helper "omshanti_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRollNumberTaken = errors.New("roll number already assigned")
	ErrRosterFull      = errors.New("all roll numbers are assigned")
)

/* ===============================
   ROLL ASSIGNMENT
=============================== */

// NextRollNumber hands out the roll after the current numeric maximum for the
// center. Canonical rolls are zero-padded, so the string cast is safe.
func NextRollNumber(db *gorm.DB, centerID uuid.UUID) (string, error) {
	var max sql.NullInt64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_center_id = ?", centerID).
		Select("MAX(CAST(student_roll_number AS INTEGER))").
		Scan(&max).Error; err != nil {
		return "", err
	}

	next := 1
	if max.Valid {
		next = int(max.Int64) + 1
	}
	if next > 999 {
		return "", ErrRosterFull
	}
	return fmt.Sprintf("%03d", next), nil
}

// FindByNormalizedRoll resolves a raw roll entry against the center's roster.
func FindByNormalizedRoll(db *gorm.DB, centerID uuid.UUID, rawRoll string) (*studentModel.StudentModel, error) {
	roll, err := helper.NormalizeRollNumber(rawRoll)
	if err != nil {
		return nil, err
	}

	var student studentModel.StudentModel
	if err := db.
		First(&student, "student_center_id = ? AND student_roll_number = ?", centerID, roll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &student, nil
}

// RollTaken reports whether the canonical roll is already assigned, optionally
// ignoring one student (used on update so a student can keep their own roll).
func RollTaken(db *gorm.DB, centerID uuid.UUID, roll string, ignoreStudentID *uuid.UUID) (bool, error) {
	q := db.Model(&studentModel.StudentModel{}).
		Where("student_center_id = ? AND student_roll_number = ?", centerID, roll)
	if ignoreStudentID != nil {
		q = q.Where("student_id <> ?", *ignoreStudentID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

/* ===============================
   DUPLICATE NAME HANDLING
=============================== */

// GenerateNameSuggestions proposes distinguishable variants for a name that
// already exists on the roster. Existing names are skipped so every suggestion
// is free at the time it is generated.
func GenerateNameSuggestions(name string, existing []string) []string {
	used := make(map[string]bool, len(existing))
	for _, n := range existing {
		used[n] = true
	}

	suggestions := make([]string, 0, 3)
	for i := 2; len(suggestions) < 3 && i < 100; i++ {
		candidate := fmt.Sprintf("%s %d", name, i)
		if !used[candidate] {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

// NameExists checks the roster for an exact name match.
func NameExists(db *gorm.DB, centerID uuid.UUID, name string) (bool, []string, error) {
	var names []string
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_center_id = ?", centerID).
		Pluck("student_name", &names).Error; err != nil {
		return false, nil, err
	}
	for _, n := range names {
		if n == name {
			return true, names, nil
		}
	}
	return false, names, nil
}
