// file: internals/route/base_routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoutes "buspay_backend/internals/features/payments/routes"
	studentRoutes "buspay_backend/internals/features/students/routes"
	authRoutes "buspay_backend/internals/features/users/auth/routes"
	authMw "buspay_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoutes.AuthRoutes(app, db)

	// ===================== API (JWT) =====================
	log.Println("[INFO] Setting up /api group (JWT)...")
	api := app.Group("/api", authMw.AuthMiddleware())

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoutes.StudentRoutes(api, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoutes.PaymentRoutes(api, db)

	log.Println("[INFO] Setting up TuitionRoutes...")
	paymentRoutes.TuitionRoutes(api, db)
}
