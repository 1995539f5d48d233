// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "sekolahku_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtrl.NewAuthController(db)

	auth := app.Group("/api/auth")
	{
		auth.Post("/login", ctl.Login)
	}
}
