package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinancialHelpModel struct {
	FinancialHelpID uuid.UUID `gorm:"column:financial_help_id;type:uuid;default:gen_random_uuid();primaryKey" json:"financial_help_id"`

	// FK ke payments (NOT NULL)
	FinancialHelpPaymentID uuid.UUID `gorm:"column:financial_help_payment_id;type:uuid;not null;index:idx_financial_helps_payment" json:"financial_help_payment_id"`

	FinancialHelpName   string          `gorm:"column:financial_help_name;type:text;not null" json:"financial_help_name"`
	FinancialHelpAmount decimal.Decimal `gorm:"column:financial_help_amount;type:numeric(8,2);not null;check:financial_help_amount > 0" json:"financial_help_amount"`
}

func (FinancialHelpModel) TableName() string { return "financial_helps" }
