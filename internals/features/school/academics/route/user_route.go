// file: internals/features/school/academics/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acctl "schoolku_backend/internals/features/school/academics/controller"
	helper "schoolku_backend/internals/helpers"
)

// AcademicsUserRoutes: read-path master data untuk semua role login
func AcademicsUserRoutes(user fiber.Router, db *gorm.DB) {
	classCtl := acctl.NewClassController(db, helper.Validate)
	subjectCtl := acctl.NewSubjectController(db, helper.Validate)
	teacherCtl := acctl.NewTeacherController(db, helper.Validate)
	studentCtl := acctl.NewStudentController(db, helper.Validate)

	classes := user.Group("/classes")
	classes.Get("/", classCtl.List)
	classes.Get("/:id", classCtl.GetByID)

	user.Get("/subjects", subjectCtl.List)

	teachers := user.Group("/teachers")
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)

	students := user.Group("/students")
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Get("/:id/photo", studentCtl.GetPhoto)
}
