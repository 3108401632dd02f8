// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	acRoute "schoolku_backend/internals/features/school/academics/route"
	annRoute "schoolku_backend/internals/features/school/announcements/route"
	attRoute "schoolku_backend/internals/features/school/attendance/route"
	mkRoute "schoolku_backend/internals/features/school/marks/route"
	ttRoute "schoolku_backend/internals/features/school/timetable/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authSvc "schoolku_backend/internals/features/users/auth/service"
	authMw "schoolku_backend/internals/middlewares/auth"
)

/* =======================================================
   SetupRoutes — tiga grup besar:
   /api/auth  → publik (login, refresh, logout)
   /api/a     → admin (auth + role admin)
   /api/u     → semua role login (guard halus di controller)
   ======================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🧹 Housekeeping: bersihkan refresh token kadaluarsa saat boot
	if err := authSvc.CleanupExpiredRefreshTokens(db); err != nil {
		log.Printf("[Routes] cleanup refresh token: %v", err)
	}

	api := app.Group("/api")

	// ---------- Publik ----------
	auth := api.Group("/auth")
	authRoute.AuthRoutes(auth, db)

	// ---------- Admin ----------
	admin := api.Group("/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)
	authRoute.AuthAdminRoutes(admin, db)
	acRoute.AcademicsAdminRoutes(admin, db)
	ttRoute.TimetableAdminRoutes(admin, db)
	mkRoute.MarksAdminRoutes(admin, db)
	annRoute.AnnouncementAdminRoutes(admin, db)

	// ---------- User login ----------
	user := api.Group("/u", authMw.AuthMiddleware(db))
	acRoute.AcademicsUserRoutes(user, db)
	ttRoute.TimetableUserRoutes(user, db)
	attRoute.AttendanceRoutes(user, db)
	mkRoute.MarksUserRoutes(user, db)
	annRoute.AnnouncementUserRoutes(user, db)
}
