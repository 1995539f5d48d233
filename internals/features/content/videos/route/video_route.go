// file: internals/features/content/videos/route/video_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoCtrl "sekolahku_backend/internals/features/content/videos/controller"
)

func VideoTeacherRoutes(t fiber.Router, db *gorm.DB) {
	ctl := videoCtrl.NewVideoController(db)

	videos := t.Group("/videos")
	{
		videos.Post("/", ctl.CreateVideo)
		videos.Get("/", ctl.ListTeacherVideos)
		videos.Delete("/:id", ctl.DeleteVideo)
	}
}

func VideoSuperAdminRoutes(sa fiber.Router, db *gorm.DB) {
	ctl := videoCtrl.NewVideoController(db)

	sa.Post("/videos", ctl.CreateExclusiveVideo)
}

func VideoStudentRoutes(s fiber.Router, db *gorm.DB) {
	ctl := videoCtrl.NewVideoController(db)

	s.Get("/videos", ctl.ListStudentVideos)
}
