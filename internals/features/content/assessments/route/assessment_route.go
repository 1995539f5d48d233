// file: internals/features/content/assessments/route/assessment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentCtrl "sekolahku_backend/internals/features/content/assessments/controller"
)

func AssessmentTeacherRoutes(t fiber.Router, db *gorm.DB) {
	ctl := assessmentCtrl.NewAssessmentController(db)

	assessments := t.Group("/assessments")
	{
		assessments.Post("/", ctl.CreateAssessment)
		assessments.Get("/", ctl.ListTeacherAssessments)
	}
}

func AssessmentSuperAdminRoutes(sa fiber.Router, db *gorm.DB) {
	ctl := assessmentCtrl.NewAssessmentController(db)

	sa.Post("/assessments", ctl.CreateExclusiveAssessment)
}

func AssessmentStudentRoutes(s fiber.Router, db *gorm.DB) {
	ctl := assessmentCtrl.NewAssessmentController(db)

	s.Get("/assessments", ctl.ListStudentAssessments)
}
