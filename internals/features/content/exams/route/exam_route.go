// file: internals/features/content/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	examCtrl "sekolahku_backend/internals/features/content/exams/controller"
	insightSvc "sekolahku_backend/internals/features/content/insights/service"
)

func newExamController(db *gorm.DB) *examCtrl.ExamController {
	// Tanpa API key → generator nil, InsightService jatuh ke teks fallback.
	var gen insightSvc.TextGenerator
	if key := configs.GetEnv("OPENAI_API_KEY"); key != "" {
		gen = insightSvc.NewOpenAITextGenerator(key)
	}
	return examCtrl.NewExamController(db, insightSvc.NewInsightService(db, gen))
}

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := newExamController(db)

	exams := admin.Group("/exams")
	{
		exams.Post("/", ctl.CreateExam)
		exams.Get("/", ctl.ListAdminExams)
		exams.Get("/:id/insight", ctl.GetInsight)
	}

	admin.Patch("/exam-results/:id/deactivate", ctl.DeactivateResult)
}

func ExamSuperAdminRoutes(sa fiber.Router, db *gorm.DB) {
	ctl := newExamController(db)

	sa.Post("/exams", ctl.CreateBoardExam)
	sa.Get("/exams/:id/insight", ctl.GetInsight)
}

func ExamStudentRoutes(s fiber.Router, db *gorm.DB) {
	ctl := newExamController(db)

	exams := s.Group("/exams")
	{
		exams.Get("/", ctl.ListStudentExams)
		exams.Get("/:id/ranking", ctl.GetRanking)
	}

	s.Post("/exam-results", ctl.SubmitResult)
}
