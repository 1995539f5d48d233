// file: internals/features/schools/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolCtrl "sekolahku_backend/internals/features/schools/school/controller"
)

// SchoolSuperAdminRoutes: lifecycle sekolah (create + cascade delete) milik owner platform.
func SchoolSuperAdminRoutes(sa fiber.Router, db *gorm.DB) {
	ctl := schoolCtrl.NewSchoolController(db)

	schools := sa.Group("/schools")
	{
		schools.Post("/", ctl.CreateSchool)
		schools.Delete("/:id", ctl.DeleteSchool)
	}
}

// SchoolAdminRoutes: profil & dashboard tenant sendiri.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := schoolCtrl.NewSchoolController(db)

	school := admin.Group("/school")
	{
		school.Get("/profile", ctl.GetProfile)
		school.Patch("/profile", ctl.UpdateProfile)
		school.Get("/dashboard", ctl.Dashboard)
	}
}
