// file: internals/features/school/timetable/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "schoolku_backend/internals/features/school/timetable/controller"
	helper "schoolku_backend/internals/helpers"
)

// TimetableUserRoutes: read-path untuk semua role yang sudah login
func TimetableUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := ttctl.New(db, helper.Validate)

	grp := user.Group("/timetables")
	grp.Get("/:class_id", ctl.GetClassSchedule)
	grp.Get("/:class_id/week", ctl.GetClassWeek)
	grp.Get("/:class_id/live", ctl.LiveStatus)

	user.Get("/teachers/:teacher_id/timetable", ctl.TeacherTimetable)
}
