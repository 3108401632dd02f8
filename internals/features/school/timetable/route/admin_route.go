// file: internals/features/school/timetable/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "schoolku_backend/internals/features/school/timetable/controller"
	helper "schoolku_backend/internals/helpers"
)

// TimetableAdminRoutes mendaftarkan route penyusunan jadwal (admin)
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := ttctl.New(db, helper.Validate)

	grp := admin.Group("/timetables")
	grp.Post("/", ctl.SaveDaySchedule)
}
