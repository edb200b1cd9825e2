package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "buspay_backend/internals/features/payments/dto"
	model "buspay_backend/internals/features/payments/model"
	service "buspay_backend/internals/features/payments/service"
	helper "buspay_backend/internals/helpers"
)

type TuitionController struct {
	Service *service.TuitionService
}

func NewTuitionController(db *gorm.DB) *TuitionController {
	return &TuitionController{Service: service.NewTuitionService(db)}
}

/* ======================== LIST ======================== */
// GET /api/tuitions?payment_id=&status=
func (h *TuitionController) List(c *fiber.Ctx) error {
	var q dto.ListTuitionQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validator.New().Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	status, ok := model.ParseTuitionStatus(q.Status)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Status tidak dikenal")
	}

	rows, err := h.Service.FindAllByPaymentAndStatus(q.PaymentID, status)
	if err != nil {
		return mapTuitionError(err)
	}

	out := make([]dto.TuitionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TuitionResponse{
			TuitionID:          row.TuitionID,
			TuitionPaymentID:   row.TuitionPaymentID,
			TuitionStudentID:   row.TuitionStudentID,
			StudentName:        row.StudentName,
			TuitionPaymentType: row.TuitionPaymentType,
			TuitionStatus:      row.TuitionStatus,
			TuitionPaidAt:      row.TuitionPaidAt,
		})
	}

	return helper.JsonOK(c, "OK", out)
}

/* ======================== PAID ======================== */
// PATCH /api/tuitions/:id/paid
func (h *TuitionController) PatchToPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TuitionPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	paymentType, ok := model.ParsePaymentType(req.TuitionPaymentType)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Metode pembayaran tidak dikenal")
	}

	tuition, err := h.Service.UpdateToPaid(id, paymentType)
	if err != nil {
		return mapTuitionError(err)
	}

	return helper.JsonUpdated(c, "Tuition berhasil ditandai lunas", dto.FromTuitionModel(*tuition))
}

/* ======================== PENDING ======================== */
// PATCH /api/tuitions/:id/pending
func (h *TuitionController) PatchToPending(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	tuition, err := h.Service.UpdateToPending(id)
	if err != nil {
		return mapTuitionError(err)
	}

	return helper.JsonUpdated(c, "Tuition dikembalikan ke pending", dto.FromTuitionModel(*tuition))
}

func mapTuitionError(err error) error {
	switch {
	case errors.Is(err, service.ErrTuitionNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Tuition tidak ditemukan")
	case errors.Is(err, service.ErrInvalidPaymentID):
		return fiber.NewError(fiber.StatusBadRequest, "Payment ID tidak valid")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
