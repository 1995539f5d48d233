// file: internals/features/content/streams/route/stream_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	streamCtrl "sekolahku_backend/internals/features/content/streams/controller"
)

func StreamTeacherRoutes(t fiber.Router, db *gorm.DB) {
	ctl := streamCtrl.NewStreamController(db)

	streams := t.Group("/streams")
	{
		streams.Post("/", ctl.CreateStream)
		streams.Patch("/:id/live", ctl.SetLive)
	}
}

func StreamStudentRoutes(s fiber.Router, db *gorm.DB) {
	ctl := streamCtrl.NewStreamController(db)

	s.Get("/streams", ctl.ListStreams)
}
