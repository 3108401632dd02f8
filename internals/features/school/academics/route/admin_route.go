// file: internals/features/school/academics/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acctl "schoolku_backend/internals/features/school/academics/controller"
	helper "schoolku_backend/internals/helpers"
)

// AcademicsAdminRoutes mendaftarkan route tata usaha: master data kelas,
// mapel, guru, siswa (admissions) dan kenaikan kelas.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classCtl := acctl.NewClassController(db, helper.Validate)
	subjectCtl := acctl.NewSubjectController(db, helper.Validate)
	teacherCtl := acctl.NewTeacherController(db, helper.Validate)
	studentCtl := acctl.NewStudentController(db, helper.Validate)

	classes := admin.Group("/classes")
	classes.Post("/", classCtl.Create)
	classes.Put("/:id", classCtl.Update)
	classes.Delete("/:id", classCtl.Delete)
	classes.Post("/promote", classCtl.Promote)

	subjects := admin.Group("/subjects")
	subjects.Post("/", subjectCtl.Create)
	subjects.Put("/:id", subjectCtl.Update)
	subjects.Delete("/:id", subjectCtl.Delete)

	teachers := admin.Group("/teachers")
	teachers.Post("/", teacherCtl.Create)
	teachers.Put("/:id", teacherCtl.Update)
	teachers.Delete("/:id", teacherCtl.Delete)

	students := admin.Group("/students")
	students.Post("/", studentCtl.Admit)
	students.Put("/:id", studentCtl.Update)
	students.Put("/:id/photo", studentCtl.UpdatePhoto)
	students.Delete("/:id", studentCtl.Delete)
}
