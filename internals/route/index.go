package route

import (
	attendanceRoute "omshanti_backend/internals/features/attendance/route"
	centerRoute "omshanti_backend/internals/features/centers/route"
	studentRoute "omshanti_backend/internals/features/students/route"
	superAdminRoute "omshanti_backend/internals/features/superadmin/route"
	"omshanti_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires the whole HTTP surface under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public: center register/login, the keypad flow, superadmin login.
	centerRoute.CenterAuthRoutes(api, db)
	attendanceRoute.AttendancePublicRoutes(api, db)
	superAdminRoute.SuperAdminRoutes(api, db)

	// Center admin: everything under /api/admin requires a center token.
	admin := api.Group("/admin", auth.CenterAuth())
	centerRoute.CenterAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
