package service_test

import (
	"os"
	"testing"

	database "omshanti_backend/internals/databases"
	attendanceModel "omshanti_backend/internals/features/attendance/model"
	service "omshanti_backend/internals/features/attendance/service"
	centerModel "omshanti_backend/internals/features/centers/model"
	studentModel "omshanti_backend/internals/features/students/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marking hits the unique index, so these run against a real Postgres.
// Usage: INTEGRATION_TESTS=1 go test ./internals/features/attendance/... -run Marking -v
func integrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run storage-backed tests")
	}
	database.ConnectDB()
	db := database.DB
	if err := db.AutoMigrate(
		&centerModel.CenterModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, roll string) (centerID uuid.UUID, student studentModel.StudentModel) {
	t.Helper()
	center := centerModel.CenterModel{
		CenterCode:     "it-" + uuid.NewString()[:8],
		CenterName:     "Integration Center",
		CenterPassword: "x",
	}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	student = studentModel.StudentModel{
		StudentCenterID:   center.CenterID,
		StudentRollNumber: roll,
		StudentName:       "Integration Student",
		StudentType:       "Kumar",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	t.Cleanup(func() {
		db.Where("attendance_center_id = ?", center.CenterID).Delete(&attendanceModel.AttendanceModel{})
		db.Delete(&student)
		db.Delete(&center)
	})
	return center.CenterID, student
}

func TestMarkingIdempotence(t *testing.T) {
	db := integrationDB(t)
	centerID, student := seedStudent(t, db, "001")

	first, err := service.MarkPresentByRoll(db, centerID, "1", "2024-02-01")
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if first.AlreadyMarked {
		t.Fatal("first mark reported already_marked")
	}

	second, err := service.MarkPresentByRoll(db, centerID, "001", "2024-02-01")
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if !second.AlreadyMarked {
		t.Fatal("second mark should report already_marked")
	}
	if second.StudentName != student.StudentName {
		t.Fatalf("already-marked result lost student name: %q", second.StudentName)
	}

	var n int64
	db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_date = ?", student.StudentID, "2024-02-01").
		Count(&n)
	if n != 1 {
		t.Fatalf("fact count = %d, want exactly 1", n)
	}
}

func TestUnmarkThenRemark(t *testing.T) {
	db := integrationDB(t)
	centerID, student := seedStudent(t, db, "002")

	if _, err := service.MarkPresentByStudent(db, centerID, student.StudentID, "2024-02-02"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	rows, err := service.Unmark(db, centerID, student.StudentID, "2024-02-02")
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if rows != 1 {
		t.Fatalf("unmark rows = %d, want 1", rows)
	}

	// removing an already-removed fact is a valid terminal state
	rows, err = service.Unmark(db, centerID, student.StudentID, "2024-02-02")
	if err != nil {
		t.Fatalf("second unmark: %v", err)
	}
	if rows != 0 {
		t.Fatalf("second unmark rows = %d, want 0", rows)
	}

	res, err := service.MarkPresentByStudent(db, centerID, student.StudentID, "2024-02-02")
	if err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	if res.AlreadyMarked {
		t.Fatal("re-mark after unmark reported already_marked")
	}

	var n int64
	db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_date = ?", student.StudentID, "2024-02-02").
		Count(&n)
	if n != 1 {
		t.Fatalf("fact count = %d, want exactly 1", n)
	}
}

func TestMarkUnknownRoll(t *testing.T) {
	db := integrationDB(t)
	centerID, _ := seedStudent(t, db, "003")

	if _, err := service.MarkPresentByRoll(db, centerID, "250", ""); err != service.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
