package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTuition_DefaultsPending(t *testing.T) {
	paymentID := uuid.New()
	studentID := uuid.New()

	tuition := NewTuition(paymentID, studentID)

	assert.Equal(t, paymentID, tuition.TuitionPaymentID)
	assert.Equal(t, studentID, tuition.TuitionStudentID)
	assert.Equal(t, TuitionPending, tuition.TuitionStatus)
	assert.Nil(t, tuition.TuitionPaymentType)
	assert.Nil(t, tuition.TuitionPaidAt)
}

func TestTuition_MarkPaid(t *testing.T) {
	tuition := NewTuition(uuid.New(), uuid.New())

	before := time.Now()
	tuition.MarkPaid(PaymentTypePix, time.Now())
	after := time.Now()

	assert.Equal(t, TuitionPaid, tuition.TuitionStatus)
	require.NotNil(t, tuition.TuitionPaymentType)
	assert.Equal(t, PaymentTypePix, *tuition.TuitionPaymentType)
	require.NotNil(t, tuition.TuitionPaidAt)
	assert.False(t, tuition.TuitionPaidAt.Before(before))
	assert.False(t, tuition.TuitionPaidAt.After(after))
}

// MarkPaid dua kali bukan error: stempel & metode diganti (jalur koreksi).
func TestTuition_MarkPaidTwiceRestamps(t *testing.T) {
	tuition := NewTuition(uuid.New(), uuid.New())

	first := time.Now().Add(-1 * time.Hour)
	tuition.MarkPaid(PaymentTypeCard, first)

	second := time.Now()
	tuition.MarkPaid(PaymentTypeCash, second)

	assert.Equal(t, TuitionPaid, tuition.TuitionStatus)
	assert.Equal(t, PaymentTypeCash, *tuition.TuitionPaymentType)
	assert.True(t, tuition.TuitionPaidAt.After(first))
}

func TestTuition_MarkPendingClearsSettlement(t *testing.T) {
	tuition := NewTuition(uuid.New(), uuid.New())
	tuition.MarkPaid(PaymentTypeBillet, time.Now())

	tuition.MarkPending()

	assert.Equal(t, TuitionPending, tuition.TuitionStatus)
	assert.Nil(t, tuition.TuitionPaymentType)
	assert.Nil(t, tuition.TuitionPaidAt)
}

func TestParsePaymentType(t *testing.T) {
	for _, valid := range []string{"PIX", "CARD", "BILLET", "CASH_PAYMENT"} {
		got, ok := ParsePaymentType(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, PaymentType(valid), got)
	}

	_, ok := ParsePaymentType("TRANSFER")
	assert.False(t, ok)
	_, ok = ParsePaymentType("pix")
	assert.False(t, ok)
}

func TestParseTuitionStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "PAID"} {
		got, ok := ParseTuitionStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, TuitionStatus(valid), got)
	}

	_, ok := ParseTuitionStatus("CANCELED")
	assert.False(t, ok)
}
