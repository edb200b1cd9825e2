// internals/features/students/routes/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "buspay_backend/internals/features/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")

	students.Post("/", ctl.Create)                                         // POST   /api/students
	students.Get("/", ctl.List)                                            // GET    /api/students
	students.Get("/for-payment", ctl.ListForPayment)                       // GET    /api/students/for-payment
	students.Get("/check-phone-number/:phoneNumber", ctl.CheckPhoneNumber) // GET    /api/students/check-phone-number/:phoneNumber
	students.Get("/:id", ctl.GetByID)                                      // GET    /api/students/:id
	students.Put("/:id", ctl.Put)                                          // PUT    /api/students/:id
	students.Patch("/:id/active", ctl.PatchActive)                         // PATCH  /api/students/:id/active
	students.Delete("/:id", ctl.Delete)                                    // DELETE /api/students/:id
}
