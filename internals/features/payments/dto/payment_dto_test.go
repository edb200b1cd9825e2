package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validCreateRequest() CreatePaymentRequest {
	return CreatePaymentRequest{
		PaymentInvoiceMonth: "Fevereiro",
		PaymentInvoiceYear:  "2025",
		PaymentTotalAmount:  dec("350.10"),
		FinancialHelps: []FinancialHelpRequest{
			{FinancialHelpName: "Bolsa A", FinancialHelpAmount: dec("80.00")},
		},
		StudentIDs: []uuid.UUID{uuid.New()},
	}
}

func TestCreatePaymentRequestValidate(t *testing.T) {
	require.NoError(t, validCreateRequest().Validate())

	t.Run("total negatif ditolak", func(t *testing.T) {
		req := validCreateRequest()
		req.PaymentTotalAmount = dec("-1.00")
		assert.Error(t, req.Validate())
	})

	t.Run("total lebih dari 2 desimal ditolak", func(t *testing.T) {
		req := validCreateRequest()
		req.PaymentTotalAmount = dec("10.001")
		assert.Error(t, req.Validate())
	})

	t.Run("bantuan nol ditolak", func(t *testing.T) {
		req := validCreateRequest()
		req.FinancialHelps[0].FinancialHelpAmount = dec("0.00")
		assert.Error(t, req.Validate())
	})

	t.Run("bantuan lebih dari 2 desimal ditolak", func(t *testing.T) {
		req := validCreateRequest()
		req.FinancialHelps[0].FinancialHelpAmount = dec("5.005")
		assert.Error(t, req.Validate())
	})
}

func TestCreatePaymentRequestHelpers(t *testing.T) {
	req := validCreateRequest()
	req.FinancialHelps = append(req.FinancialHelps, FinancialHelpRequest{
		FinancialHelpName:   "Bolsa B",
		FinancialHelpAmount: dec("70.00"),
	})

	amounts := req.HelpAmounts()
	require.Len(t, amounts, 2)
	assert.True(t, dec("80.00").Equal(amounts[0]))
	assert.True(t, dec("70.00").Equal(amounts[1]))

	paymentID := uuid.New()
	models := req.ToFinancialHelpModels(paymentID)
	require.Len(t, models, 2)
	for _, m := range models {
		assert.Equal(t, paymentID, m.FinancialHelpPaymentID)
	}
	assert.Equal(t, "Bolsa A", models[0].FinancialHelpName)
	assert.Equal(t, "Bolsa B", models[1].FinancialHelpName)
}

func TestPaymentAmountsRequestValidate(t *testing.T) {
	req := PaymentAmountsRequest{
		PaymentTotalAmount: dec("100.00"),
		StudentsQuantity:   3,
	}
	require.NoError(t, req.Validate())

	req.FinancialHelps = []FinancialHelpRequest{
		{FinancialHelpName: "Bolsa", FinancialHelpAmount: dec("-5.00")},
	}
	assert.Error(t, req.Validate())
}
