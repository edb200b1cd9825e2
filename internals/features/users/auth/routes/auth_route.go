// internals/features/users/auth/routes/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "buspay_backend/internals/features/users/auth/controller"
	middlewares "buspay_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := app.Group("/auth")

	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login) // POST /auth/login
	auth.Post("/refresh", ctl.Refresh)                             // POST /auth/refresh
}
