// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attctl "schoolku_backend/internals/features/school/attendance/controller"
	helper "schoolku_backend/internals/helpers"
)

// AttendanceRoutes: tulis dijaga role di controller (teacher/admin),
// baca untuk semua role login.
func AttendanceRoutes(user fiber.Router, db *gorm.DB) {
	ctl := attctl.New(db, helper.Validate)

	grp := user.Group("/attendance")
	grp.Post("/sessions", ctl.OpenSession)
	grp.Post("/sessions/:session_id/mark", ctl.Mark)
	grp.Get("/sessions/:session_id", ctl.GetSession)
	grp.Get("/classes/:class_id/sessions", ctl.ListSessions)
}
