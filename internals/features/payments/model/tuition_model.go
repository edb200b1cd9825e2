package model

import (
	"time"

	"github.com/google/uuid"
)

// Enum kecil biar aman saat dipakai di code
type TuitionStatus string

const (
	TuitionPending TuitionStatus = "PENDING"
	TuitionPaid    TuitionStatus = "PAID"
)

func ParseTuitionStatus(s string) (TuitionStatus, bool) {
	switch TuitionStatus(s) {
	case TuitionPending, TuitionPaid:
		return TuitionStatus(s), true
	}
	return "", false
}

// Metode pembayaran: hanya bermakna saat status PAID
type PaymentType string

const (
	PaymentTypePix    PaymentType = "PIX"
	PaymentTypeCard   PaymentType = "CARD"
	PaymentTypeBillet PaymentType = "BILLET"
	PaymentTypeCash   PaymentType = "CASH_PAYMENT"
)

func ParsePaymentType(s string) (PaymentType, bool) {
	switch PaymentType(s) {
	case PaymentTypePix, PaymentTypeCard, PaymentTypeBillet, PaymentTypeCash:
		return PaymentType(s), true
	}
	return "", false
}

type TuitionModel struct {
	TuitionID uuid.UUID `gorm:"column:tuition_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tuition_id"`

	// FK ke header payment (NOT NULL)
	TuitionPaymentID uuid.UUID `gorm:"column:tuition_payment_id;type:uuid;not null;index:idx_tuitions_payment" json:"tuition_payment_id"`

	// FK lemah ke students: lookup saja, tanpa cascade
	TuitionStudentID uuid.UUID `gorm:"column:tuition_student_id;type:uuid;not null;index:idx_tuitions_student" json:"tuition_student_id"`

	TuitionPaymentType *PaymentType  `gorm:"column:tuition_payment_type;type:varchar(20)" json:"tuition_payment_type,omitempty"`
	TuitionStatus      TuitionStatus `gorm:"column:tuition_status;type:varchar(10);not null;default:PENDING" json:"tuition_status"`
	TuitionPaidAt      *time.Time    `gorm:"column:tuition_paid_at" json:"tuition_paid_at,omitempty"`
}

func (TuitionModel) TableName() string { return "tuitions" }

// NewTuition membuat tagihan per siswa dengan status awal PENDING
func NewTuition(paymentID, studentID uuid.UUID) TuitionModel {
	return TuitionModel{
		TuitionPaymentID: paymentID,
		TuitionStudentID: studentID,
		TuitionStatus:    TuitionPending,
	}
}

// MarkPaid: set metode + status PAID + stempel paid_at.
// Boleh dipanggil ulang pada tuition yang sudah PAID (koreksi metode/stempel).
func (t *TuitionModel) MarkPaid(paymentType PaymentType, paidAt time.Time) {
	t.TuitionPaymentType = &paymentType
	t.TuitionStatus = TuitionPaid
	t.TuitionPaidAt = &paidAt
}

// MarkPending: kembalikan ke PENDING, kosongkan metode & paid_at
func (t *TuitionModel) MarkPending() {
	t.TuitionPaymentType = nil
	t.TuitionStatus = TuitionPending
	t.TuitionPaidAt = nil
}
