// file: internals/features/school/marks/route/marks_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mkctl "schoolku_backend/internals/features/school/marks/controller"
	helper "schoolku_backend/internals/helpers"
)

// MarksAdminRoutes: kelola term & kunci nilai (admin)
func MarksAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := mkctl.New(db, helper.Validate)

	terms := admin.Group("/terms")
	terms.Post("/", ctl.CreateTerm)
	terms.Put("/:term_id/lock", ctl.LockTerm)
	terms.Put("/:term_id/unlock", ctl.UnlockTerm)
}

// MarksUserRoutes: entri nilai (guru, dijaga di controller) + baca
func MarksUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := mkctl.New(db, helper.Validate)

	user.Get("/terms", ctl.ListTerms)
	user.Post("/marks", ctl.UpsertMark)
	user.Get("/students/:student_id/marks", ctl.StudentMarks)
}
