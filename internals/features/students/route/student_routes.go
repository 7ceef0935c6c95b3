package route

import (
	studentController "omshanti_backend/internals/features/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	importCtrl := studentController.NewStudentImportController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.ListStudents)
	students.Get("/search", ctrl.SearchStudents)
	students.Get("/export", importCtrl.ExportStudents)
	students.Post("/import", importCtrl.ImportStudents)

	// Literal segments above, parameterized below so "search" is never
	// parsed as a roll number.
	students.Get("/by-roll/:roll_number", ctrl.GetStudentByRoll)
	students.Get("/:student_id", ctrl.GetStudent)
	students.Put("/:student_id", ctrl.UpdateStudent)
	students.Delete("/:student_id", ctrl.DeleteStudent)
}
