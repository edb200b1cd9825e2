// internals/features/payments/dto/payment_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "buspay_backend/internals/features/payments/model"
)

/* =============== REQUESTS =============== */

type FinancialHelpRequest struct {
	FinancialHelpName   string          `json:"financial_help_name"   validate:"required,min=1,max=100"`
	FinancialHelpAmount decimal.Decimal `json:"financial_help_amount"`
}

type CreatePaymentRequest struct {
	PaymentInvoiceMonth string `json:"payment_invoice_month" validate:"required,min=1,max=20"`
	PaymentInvoiceYear  string `json:"payment_invoice_year"  validate:"required,min=1,max=10"`

	PaymentTotalAmount decimal.Decimal `json:"payment_total_amount"`

	FinancialHelps []FinancialHelpRequest `json:"financial_helps" validate:"omitempty,dive"`
	StudentIDs     []uuid.UUID            `json:"student_ids"     validate:"required,min=1"`
}

// Validate mengecek aturan nilai uang yang tidak tercover tag validator:
// total >= 0, tiap bantuan > 0, semuanya maksimal 2 digit desimal.
func (r CreatePaymentRequest) Validate() error {
	if err := validateMoney(r.PaymentTotalAmount, false); err != nil {
		return errors.New("payment_total_amount: " + err.Error())
	}
	for _, fh := range r.FinancialHelps {
		if err := validateMoney(fh.FinancialHelpAmount, true); err != nil {
			return errors.New("financial_help_amount: " + err.Error())
		}
	}
	return nil
}

func (r CreatePaymentRequest) HelpAmounts() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(r.FinancialHelps))
	for _, fh := range r.FinancialHelps {
		out = append(out, fh.FinancialHelpAmount)
	}
	return out
}

func (r CreatePaymentRequest) ToFinancialHelpModels(paymentID uuid.UUID) []m.FinancialHelpModel {
	out := make([]m.FinancialHelpModel, 0, len(r.FinancialHelps))
	for _, fh := range r.FinancialHelps {
		out = append(out, m.FinancialHelpModel{
			FinancialHelpPaymentID: paymentID,
			FinancialHelpName:      fh.FinancialHelpName,
			FinancialHelpAmount:    fh.FinancialHelpAmount,
		})
	}
	return out
}

// Preview tanpa persist (POST /payments/calculate-amounts)
type PaymentAmountsRequest struct {
	PaymentTotalAmount decimal.Decimal        `json:"payment_total_amount"`
	FinancialHelps     []FinancialHelpRequest `json:"financial_helps"   validate:"omitempty,dive"`
	StudentsQuantity   int                    `json:"students_quantity" validate:"required,min=1"`
}

func (r PaymentAmountsRequest) Validate() error {
	if err := validateMoney(r.PaymentTotalAmount, false); err != nil {
		return errors.New("payment_total_amount: " + err.Error())
	}
	for _, fh := range r.FinancialHelps {
		if err := validateMoney(fh.FinancialHelpAmount, true); err != nil {
			return errors.New("financial_help_amount: " + err.Error())
		}
	}
	return nil
}

func (r PaymentAmountsRequest) HelpAmounts() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(r.FinancialHelps))
	for _, fh := range r.FinancialHelps {
		out = append(out, fh.FinancialHelpAmount)
	}
	return out
}

func validateMoney(d decimal.Decimal, mustBePositive bool) error {
	if mustBePositive && !d.IsPositive() {
		return errors.New("harus lebih besar dari nol")
	}
	if !mustBePositive && d.IsNegative() {
		return errors.New("tidak boleh negatif")
	}
	if d.Exponent() < -2 {
		return errors.New("maksimal 2 digit desimal")
	}
	return nil
}

/* =============== RESPONSES =============== */

type FinancialHelpResponse struct {
	FinancialHelpID     uuid.UUID       `json:"financial_help_id"`
	FinancialHelpName   string          `json:"financial_help_name"`
	FinancialHelpAmount decimal.Decimal `json:"financial_help_amount"`
}

type PaymentResponse struct {
	PaymentID            uuid.UUID       `json:"payment_id"`
	PaymentInvoiceMonth  string          `json:"payment_invoice_month"`
	PaymentInvoiceYear   string          `json:"payment_invoice_year"`
	PaymentTotalAmount   decimal.Decimal `json:"payment_total_amount"`
	PaymentTotalToBePaid decimal.Decimal `json:"payment_total_to_be_paid"`
	PaymentTuitionAmount decimal.Decimal `json:"payment_tuition_amount"`
	PaymentCreatedAt     time.Time       `json:"payment_created_at"`

	FinancialHelps []FinancialHelpResponse `json:"financial_helps"`
	Tuitions       []TuitionResponse       `json:"tuitions,omitempty"`
}

func FromPaymentModel(mo m.PaymentModel) PaymentResponse {
	helps := make([]FinancialHelpResponse, 0, len(mo.FinancialHelps))
	for _, fh := range mo.FinancialHelps {
		helps = append(helps, FinancialHelpResponse{
			FinancialHelpID:     fh.FinancialHelpID,
			FinancialHelpName:   fh.FinancialHelpName,
			FinancialHelpAmount: fh.FinancialHelpAmount,
		})
	}
	tuitions := make([]TuitionResponse, 0, len(mo.Tuitions))
	for _, t := range mo.Tuitions {
		tuitions = append(tuitions, FromTuitionModel(t))
	}
	return PaymentResponse{
		PaymentID:            mo.PaymentID,
		PaymentInvoiceMonth:  mo.PaymentInvoiceMonth,
		PaymentInvoiceYear:   mo.PaymentInvoiceYear,
		PaymentTotalAmount:   mo.PaymentTotalAmount,
		PaymentTotalToBePaid: mo.PaymentTotalToBePaid,
		PaymentTuitionAmount: mo.PaymentTuitionAmount,
		PaymentCreatedAt:     mo.PaymentCreatedAt,
		FinancialHelps:       helps,
		Tuitions:             tuitions,
	}
}

type PaymentSummaryResponse struct {
	PaymentID            uuid.UUID       `json:"payment_id"`
	PaymentInvoiceMonth  string          `json:"payment_invoice_month"`
	PaymentInvoiceYear   string          `json:"payment_invoice_year"`
	PaymentTotalAmount   decimal.Decimal `json:"payment_total_amount"`
	PaymentTotalToBePaid decimal.Decimal `json:"payment_total_to_be_paid"`
	PaymentTuitionAmount decimal.Decimal `json:"payment_tuition_amount"`
	PaymentCreatedAt     time.Time       `json:"payment_created_at"`
}

func SummariesFromModels(rows []m.PaymentModel) []PaymentSummaryResponse {
	out := make([]PaymentSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, PaymentSummaryResponse{
			PaymentID:            row.PaymentID,
			PaymentInvoiceMonth:  row.PaymentInvoiceMonth,
			PaymentInvoiceYear:   row.PaymentInvoiceYear,
			PaymentTotalAmount:   row.PaymentTotalAmount,
			PaymentTotalToBePaid: row.PaymentTotalToBePaid,
			PaymentTuitionAmount: row.PaymentTuitionAmount,
			PaymentCreatedAt:     row.PaymentCreatedAt,
		})
	}
	return out
}

type PaymentAmountsResponse struct {
	PaymentTotalAmount decimal.Decimal `json:"payment_total_amount"`
	AmountToBePaid     decimal.Decimal `json:"amount_to_be_paid"`
	StudentsQuantity   int             `json:"students_quantity"`
	TuitionAmount      decimal.Decimal `json:"tuition_amount"`
}
