// internals/features/payments/service/payment_calculator.go
package service

import (
	"github.com/shopspring/decimal"
)

// Kalkulator murni: tanpa side effect, tanpa I/O.
// Semua input sudah tervalidasi maksimal 2 digit desimal di layer DTO.

// CalculateAmountToBePaid = totalAmount - Σ(bantuan).
// Gagal dengan ErrDiscountExceedsTotal SEBELUM entity apa pun dibuat.
func CalculateAmountToBePaid(totalAmount decimal.Decimal, helpAmounts []decimal.Decimal) (decimal.Decimal, error) {
	helpTotal := decimal.Zero
	for _, amount := range helpAmounts {
		helpTotal = helpTotal.Add(amount)
	}

	if helpTotal.GreaterThan(totalAmount) {
		return decimal.Zero, ErrDiscountExceedsTotal
	}

	return totalAmount.Sub(helpTotal), nil
}

// CalculateTuitionAmount membagi rata ke semua siswa dengan pembulatan
// NAIK di sen (ceilToCents): organisasi tidak boleh kurang tagih,
// sisa pembulatan diserap kolektif. share × n >= amountToBePaid selalu.
func CalculateTuitionAmount(amountToBePaid decimal.Decimal, studentsQuantity int) decimal.Decimal {
	share := amountToBePaid.Div(decimal.NewFromInt(int64(studentsQuantity)))
	return ceilToCents(share)
}

// ceilToCents: pembulatan ke atas pada 2 digit desimal.
// Aturan bisnis eksplisit, bukan default library.
func ceilToCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Ceil().Shift(-2)
}
