// file: internals/features/academics/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtrl "sekolahku_backend/internals/features/academics/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := teacherCtrl.NewTeacherController(db)

	teachers := admin.Group("/teachers")
	{
		teachers.Post("/", ctl.CreateTeacher)
		teachers.Get("/", ctl.ListTeachers)
		teachers.Post("/:id/subjects", ctl.AssignSubjects)
		teachers.Post("/:id/classes", ctl.AssignClasses)
		teachers.Get("/:id/classes", ctl.ListClasses)
	}
}
