// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectCtrl "sekolahku_backend/internals/features/academics/subjects/controller"
)

// Katalog subject global per board: hanya super-admin yang menulis.
func SubjectSuperAdminRoutes(sa fiber.Router, db *gorm.DB) {
	ctl := subjectCtrl.NewSubjectController(db)

	subjects := sa.Group("/subjects")
	{
		subjects.Post("/", ctl.CreateSubject)
		subjects.Delete("/:id", ctl.DeleteSubject)
	}
}

// Semua role terautentikasi boleh baca katalog.
func SubjectReadRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectCtrl.NewSubjectController(db)

	r.Get("/subjects", ctl.ListSubjects)
}
