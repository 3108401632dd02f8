// file: internals/features/school/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annctl "schoolku_backend/internals/features/school/announcements/controller"
	helper "schoolku_backend/internals/helpers"
)

// AnnouncementAdminRoutes: buat pengumuman + fan-out (admin)
func AnnouncementAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := annctl.New(db, helper.Validate)

	admin.Post("/announcements", ctl.Create)
}

// AnnouncementUserRoutes: baca pengumuman & feed notifikasi sendiri
func AnnouncementUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := annctl.New(db, helper.Validate)

	user.Get("/announcements", ctl.List)
	user.Get("/notifications", ctl.MyFeed)
	user.Put("/notifications/:notification_id/read", ctl.MarkRead)
}
