package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "buspay_backend/internals/features/payments/dto"
	studentModel "buspay_backend/internals/features/students/model"
	studentService "buspay_backend/internals/features/students/service"
)

// fakeDirectory meniru StudentDirectory tanpa DB.
type fakeDirectory struct {
	students map[uuid.UUID]studentModel.StudentModel
}

func (f *fakeDirectory) FindActiveByIDs(ids []uuid.UUID) ([]studentModel.StudentModel, error) {
	out := make([]studentModel.StudentModel, 0, len(ids))
	for _, id := range ids {
		row, ok := f.students[id]
		if !ok {
			return nil, studentService.ErrStudentNotFound
		}
		if !row.StudentActive {
			return nil, &studentService.InactiveStudentError{StudentID: id}
		}
		out = append(out, row)
	}
	return out, nil
}

func newFakeDirectory(rows ...studentModel.StudentModel) *fakeDirectory {
	f := &fakeDirectory{students: map[uuid.UUID]studentModel.StudentModel{}}
	for _, row := range rows {
		f.students[row.StudentID] = row
	}
	return f
}

func activeStudent(name string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:     uuid.New(),
		StudentName:   name,
		StudentActive: true,
	}
}

// DB sengaja nil: semua skenario gagal di bawah ini harus berhenti
// SEBELUM transaksi dimulai, tanpa menyentuh persistence sama sekali.

func TestPaymentServiceCreate_StudentNotFound(t *testing.T) {
	svc := NewPaymentService(nil, newFakeDirectory())

	_, err := svc.Create(dto.CreatePaymentRequest{
		PaymentInvoiceMonth: "Janeiro",
		PaymentInvoiceYear:  "2025",
		PaymentTotalAmount:  dec("100.00"),
		StudentIDs:          []uuid.UUID{uuid.New()},
	})
	require.ErrorIs(t, err, studentService.ErrStudentNotFound)
}

func TestPaymentServiceCreate_InactiveStudentAbortsAll(t *testing.T) {
	ok := activeStudent("Ana")
	inactive := activeStudent("Bruno")
	inactive.StudentActive = false

	svc := NewPaymentService(nil, newFakeDirectory(ok, inactive))

	_, err := svc.Create(dto.CreatePaymentRequest{
		PaymentInvoiceMonth: "Janeiro",
		PaymentInvoiceYear:  "2025",
		PaymentTotalAmount:  dec("100.00"),
		StudentIDs:          []uuid.UUID{ok.StudentID, inactive.StudentID},
	})

	var inactiveErr *studentService.InactiveStudentError
	require.ErrorAs(t, err, &inactiveErr)
	assert.Equal(t, inactive.StudentID, inactiveErr.StudentID)
}

func TestPaymentServiceCreate_DiscountExceedsTotal(t *testing.T) {
	st := activeStudent("Ana")
	svc := NewPaymentService(nil, newFakeDirectory(st))

	_, err := svc.Create(dto.CreatePaymentRequest{
		PaymentInvoiceMonth: "Janeiro",
		PaymentInvoiceYear:  "2025",
		PaymentTotalAmount:  dec("30.00"),
		FinancialHelps: []dto.FinancialHelpRequest{
			{FinancialHelpName: "Bolsa A", FinancialHelpAmount: dec("80.00")},
			{FinancialHelpName: "Bolsa B", FinancialHelpAmount: dec("70.00")},
		},
		StudentIDs: []uuid.UUID{st.StudentID},
	})
	require.ErrorIs(t, err, ErrDiscountExceedsTotal)
}

func TestPaymentServiceCalculateAmounts(t *testing.T) {
	svc := NewPaymentService(nil, newFakeDirectory())

	resp, err := svc.CalculateAmounts(dto.PaymentAmountsRequest{
		PaymentTotalAmount: dec("400.58"),
		FinancialHelps: []dto.FinancialHelpRequest{
			{FinancialHelpName: "Bolsa", FinancialHelpAmount: dec("100.14")},
		},
		StudentsQuantity: 2,
	})
	require.NoError(t, err)

	assert.True(t, dec("300.44").Equal(resp.AmountToBePaid), "got %s", resp.AmountToBePaid)
	assert.True(t, dec("150.22").Equal(resp.TuitionAmount), "got %s", resp.TuitionAmount)
	assert.Equal(t, 2, resp.StudentsQuantity)
}

func TestPaymentServiceCalculateAmounts_DiscountExceedsTotal(t *testing.T) {
	svc := NewPaymentService(nil, newFakeDirectory())

	_, err := svc.CalculateAmounts(dto.PaymentAmountsRequest{
		PaymentTotalAmount: dec("30.00"),
		FinancialHelps: []dto.FinancialHelpRequest{
			{FinancialHelpName: "Bolsa A", FinancialHelpAmount: dec("80.00")},
			{FinancialHelpName: "Bolsa B", FinancialHelpAmount: dec("70.00")},
		},
		StudentsQuantity: 3,
	})
	require.ErrorIs(t, err, ErrDiscountExceedsTotal)
}
