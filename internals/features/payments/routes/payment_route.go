// internals/features/payments/routes/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "buspay_backend/internals/features/payments/controller"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	payments := r.Group("/payments")

	payments.Post("/", ctl.Create)                            // POST /api/payments
	payments.Get("/", ctl.List)                               // GET  /api/payments
	payments.Post("/calculate-amounts", ctl.CalculateAmounts) // POST /api/payments/calculate-amounts
	payments.Get("/:id", ctl.GetByID)                         // GET  /api/payments/:id
}

func TuitionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewTuitionController(db)

	tuitions := r.Group("/tuitions")

	tuitions.Get("/", ctl.List)                        // GET   /api/tuitions?payment_id=&status=
	tuitions.Patch("/:id/paid", ctl.PatchToPaid)       // PATCH /api/tuitions/:id/paid
	tuitions.Patch("/:id/pending", ctl.PatchToPending) // PATCH /api/tuitions/:id/pending
}
