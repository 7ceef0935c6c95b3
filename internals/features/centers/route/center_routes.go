package route

import (
	centerController "omshanti_backend/internals/features/centers/controller"
	"omshanti_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public auth endpoints: register and login, each behind its own limiter.
func CenterAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := centerController.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// Admin endpoints: profile and keypad gate settings, token required.
func CenterAdminRoutes(admin fiber.Router, db *gorm.DB) {
	authCtrl := centerController.NewAuthController(db)
	gateCtrl := centerController.NewGateController(db)

	admin.Get("/profile", authCtrl.GetProfile)
	admin.Put("/profile", authCtrl.UpdateProfile)
	admin.Put("/password", authCtrl.ChangePassword)

	admin.Get("/attendance-password", gateCtrl.GetSettings)
	admin.Put("/attendance-password", gateCtrl.UpdateSettings)
}
