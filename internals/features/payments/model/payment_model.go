package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// Periode tagihan (string pendek bebas, mengikuti invoice)
	PaymentInvoiceMonth string `gorm:"column:payment_invoice_month;type:varchar(20);not null" json:"payment_invoice_month"`
	PaymentInvoiceYear  string `gorm:"column:payment_invoice_year;type:varchar(10);not null"  json:"payment_invoice_year"`

	// Nilai uang: 2 digit desimal
	PaymentTotalAmount   decimal.Decimal `gorm:"column:payment_total_amount;type:numeric(8,2);not null"    json:"payment_total_amount"`
	PaymentTotalToBePaid decimal.Decimal `gorm:"column:payment_total_to_be_paid;type:numeric(8,2);not null" json:"payment_total_to_be_paid"`
	PaymentTuitionAmount decimal.Decimal `gorm:"column:payment_tuition_amount;type:numeric(8,2);not null"   json:"payment_tuition_amount"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`

	// Anak: dimiliki payment, dibuat hanya di transaksi create payment
	FinancialHelps []FinancialHelpModel `gorm:"foreignKey:FinancialHelpPaymentID;references:PaymentID" json:"financial_helps,omitempty"`
	Tuitions       []TuitionModel       `gorm:"foreignKey:TuitionPaymentID;references:PaymentID"       json:"tuitions,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
