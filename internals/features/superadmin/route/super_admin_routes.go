package route

import (
	superAdminController "omshanti_backend/internals/features/superadmin/controller"
	"omshanti_backend/internals/middlewares"
	"omshanti_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SuperAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := superAdminController.NewSuperAdminController(db)

	sa := api.Group("/superadmin")
	sa.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := sa.Group("", auth.SuperAdminAuth())
	protected.Put("/password", ctrl.ChangePassword)
	protected.Get("/centers", ctrl.ListCenters)
	protected.Get("/centers/:center_id/stats", ctrl.CenterStats)
	protected.Put("/centers/:center_id/password", ctrl.ResetCenterPassword)
}
