// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/middlewares"
)

// AuthRoutes mendaftarkan endpoint publik autentikasi di bawah /api/auth.
// Register sengaja ditaruh di grup admin (lihat AuthAdminRoutes).
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctl := authController.New(db, helper.Validate)

	router.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	router.Post("/refresh-token", ctl.RefreshToken)
	router.Post("/logout", ctl.Logout)
}

// AuthAdminRoutes mendaftarkan endpoint pembuatan akun (butuh role admin).
func AuthAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := authController.New(db, helper.Validate)

	router.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
}
