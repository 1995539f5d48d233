// file: internals/features/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "sekolahku_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := classCtrl.NewClassController(db)

	classes := admin.Group("/classes")
	{
		classes.Post("/", ctl.CreateClass)
		classes.Get("/", ctl.ListClasses)
		// Assignment per NOMOR kelas: menyentuh semua section sekaligus.
		classes.Post("/assign-subjects", ctl.AssignSubjectsToClassNumber)
		classes.Get("/:id/subjects", ctl.ListClassSubjects)
	}
}
