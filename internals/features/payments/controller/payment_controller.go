package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "buspay_backend/internals/features/payments/dto"
	service "buspay_backend/internals/features/payments/service"
	studentService "buspay_backend/internals/features/students/service"
	helper "buspay_backend/internals/helpers"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		Service: service.NewPaymentService(db, studentService.NewStudentDirectory(db)),
	}
}

/* ======================= CREATE ======================= */
// POST /api/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	payment, err := h.Service.Create(req)
	if err != nil {
		return mapPaymentError(err)
	}

	return helper.JsonCreated(c, "Payment berhasil dibuat", dto.FromPaymentModel(*payment))
}

/* ======================== GET BY ID ======================== */
// GET /api/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	payment, err := h.Service.FindByID(id)
	if err != nil {
		return mapPaymentError(err)
	}

	return helper.JsonOK(c, "OK", dto.FromPaymentModel(*payment))
}

/* ======================== LIST ======================== */
// GET /api/payments?page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	rows, total, err := h.Service.FindAll(p.Limit, p.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.SummariesFromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ================== CALCULATE AMOUNTS ================== */
// POST /api/payments/calculate-amounts — preview murni, tanpa persist
func (h *PaymentController) CalculateAmounts(c *fiber.Ctx) error {
	var req dto.PaymentAmountsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.Service.CalculateAmounts(req)
	if err != nil {
		return mapPaymentError(err)
	}

	return helper.JsonOK(c, "OK", resp)
}

// mapPaymentError memetakan error bisnis ke status HTTP.
func mapPaymentError(err error) error {
	var inactive *studentService.InactiveStudentError
	switch {
	case errors.Is(err, service.ErrDiscountExceedsTotal):
		return fiber.NewError(fiber.StatusBadRequest, "Total bantuan melebihi total tagihan")
	case errors.Is(err, studentService.ErrStudentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	case errors.As(err, &inactive):
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Siswa %s tidak aktif", inactive.StudentID))
	case errors.Is(err, service.ErrPaymentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Payment tidak ditemukan")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
