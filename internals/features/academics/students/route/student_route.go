// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtrl "sekolahku_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentCtrl.NewStudentController(db)
	importCtl := studentCtrl.NewStudentImportController(db)

	students := admin.Group("/students")
	{
		students.Post("/", ctl.CreateStudent)
		students.Get("/", ctl.ListStudents)
		students.Post("/import", importCtl.ImportStudents)
		students.Post("/:id/class", ctl.AssignClass)
		students.Post("/:id/subjects", ctl.AssignSubjects)
	}
}
