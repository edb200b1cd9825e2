// internals/features/payments/dto/tuition_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "buspay_backend/internals/features/payments/model"
)

/* =============== REQUESTS =============== */

// PATCH /api/tuitions/:id/paid
type TuitionPaidRequest struct {
	TuitionPaymentType string `json:"tuition_payment_type" validate:"required,oneof=PIX CARD BILLET CASH_PAYMENT"`
}

// GET /api/tuitions?payment_id=&status=
type ListTuitionQuery struct {
	PaymentID uuid.UUID `query:"payment_id" validate:"required"`
	Status    string    `query:"status"     validate:"required,oneof=PENDING PAID"`
}

/* =============== RESPONSES =============== */

type TuitionResponse struct {
	TuitionID          uuid.UUID       `json:"tuition_id"`
	TuitionPaymentID   uuid.UUID       `json:"tuition_payment_id"`
	TuitionStudentID   uuid.UUID       `json:"tuition_student_id"`
	StudentName        string          `json:"student_name,omitempty"`
	TuitionPaymentType *m.PaymentType  `json:"tuition_payment_type,omitempty"`
	TuitionStatus      m.TuitionStatus `json:"tuition_status"`
	TuitionPaidAt      *time.Time      `json:"tuition_paid_at,omitempty"`
}

func FromTuitionModel(mo m.TuitionModel) TuitionResponse {
	return TuitionResponse{
		TuitionID:          mo.TuitionID,
		TuitionPaymentID:   mo.TuitionPaymentID,
		TuitionStudentID:   mo.TuitionStudentID,
		TuitionPaymentType: mo.TuitionPaymentType,
		TuitionStatus:      mo.TuitionStatus,
		TuitionPaidAt:      mo.TuitionPaidAt,
	}
}
