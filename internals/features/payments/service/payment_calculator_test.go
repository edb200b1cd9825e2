package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateAmountToBePaid(t *testing.T) {
	tests := []struct {
		name        string
		totalAmount string
		helps       []string
		want        string
	}{
		{"tanpa bantuan", "350.10", nil, "350.10"},
		{"dua bantuan", "350.10", []string{"80.00", "70.00"}, "200.10"},
		{"bantuan pas sama dengan total", "150.00", []string{"80.00", "70.00"}, "0.00"},
		{"total nol tanpa bantuan", "0.00", nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			helps := make([]decimal.Decimal, 0, len(tt.helps))
			for _, h := range tt.helps {
				helps = append(helps, dec(h))
			}

			got, err := CalculateAmountToBePaid(dec(tt.totalAmount), helps)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCalculateAmountToBePaid_DiscountExceedsTotal(t *testing.T) {
	_, err := CalculateAmountToBePaid(dec("30.00"), []decimal.Decimal{dec("80.00"), dec("70.00")})
	require.ErrorIs(t, err, ErrDiscountExceedsTotal)
}

func TestCalculateTuitionAmount(t *testing.T) {
	tests := []struct {
		name           string
		amountToBePaid string
		quantity       int
		want           string
	}{
		{"pembagian pas", "487.95", 3, "162.65"},
		{"pembulatan naik", "100.00", 3, "33.34"},
		{"satu siswa", "200.10", 1, "200.10"},
		{"dua siswa", "300.44", 2, "150.22"},
		{"nol dibagi berapapun", "0.00", 5, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTuitionAmount(dec(tt.amountToBePaid), tt.quantity)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

// share × n tidak boleh kurang dari amountToBePaid, dan share harus nilai
// 2-desimal terkecil yang memenuhinya.
func TestCalculateTuitionAmount_NeverUnderCollects(t *testing.T) {
	amounts := []string{"100.00", "99.99", "0.01", "487.95", "1234.56", "10.00"}
	quantities := []int{1, 2, 3, 7, 11, 30}

	oneCent := dec("0.01")
	for _, a := range amounts {
		for _, n := range quantities {
			amount := dec(a)
			share := CalculateTuitionAmount(amount, n)
			collected := share.Mul(decimal.NewFromInt(int64(n)))

			assert.True(t, collected.GreaterThanOrEqual(amount),
				"under-collect: %s x %d = %s < %s", share, n, collected, amount)

			lower := share.Sub(oneCent)
			if lower.IsNegative() {
				continue
			}
			lowerCollected := lower.Mul(decimal.NewFromInt(int64(n)))
			assert.True(t, lowerCollected.LessThan(amount),
				"share %s bukan minimal untuk %s / %d", share, a, n)
		}
	}
}
