// internals/features/payments/service/tuition_service.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "buspay_backend/internals/features/payments/model"
)

// TuitionRow: tuition + nama siswa hasil join (untuk list & sort by nama).
type TuitionRow struct {
	TuitionID          uuid.UUID           `gorm:"column:tuition_id"`
	TuitionPaymentID   uuid.UUID           `gorm:"column:tuition_payment_id"`
	TuitionStudentID   uuid.UUID           `gorm:"column:tuition_student_id"`
	TuitionPaymentType *model.PaymentType  `gorm:"column:tuition_payment_type"`
	TuitionStatus      model.TuitionStatus `gorm:"column:tuition_status"`
	TuitionPaidAt      *time.Time          `gorm:"column:tuition_paid_at"`
	StudentName        string              `gorm:"column:student_name"`
}

// TuitionStore: akses data yang dibutuhkan service tuition.
// FindByID wajib mengembalikan ErrTuitionNotFound kalau ID tidak ada.
type TuitionStore interface {
	ListByPaymentAndStatus(paymentID uuid.UUID, status model.TuitionStatus) ([]TuitionRow, error)
	FindByID(id uuid.UUID) (*model.TuitionModel, error)
	Save(tuition *model.TuitionModel) error
}

type TuitionService struct {
	Store TuitionStore
}

func NewTuitionService(db *gorm.DB) *TuitionService {
	return &TuitionService{Store: NewTuitionRepository(db)}
}

// FindAllByPaymentAndStatus: urut nama siswa ascending.
// Hasil kosong diperlakukan sebagai payment ID tidak valid.
func (s *TuitionService) FindAllByPaymentAndStatus(paymentID uuid.UUID, status model.TuitionStatus) ([]TuitionRow, error) {
	rows, err := s.Store.ListByPaymentAndStatus(paymentID, status)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrInvalidPaymentID
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StudentName < rows[j].StudentName
	})
	return rows, nil
}

// UpdateToPaid: set metode + PAID + stempel paid_at = now.
// Dipanggil ulang pada tuition PAID tidak error, hanya re-stempel (jalur koreksi).
func (s *TuitionService) UpdateToPaid(id uuid.UUID, paymentType model.PaymentType) (*model.TuitionModel, error) {
	tuition, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}

	tuition.MarkPaid(paymentType, time.Now())
	if err := s.Store.Save(tuition); err != nil {
		return nil, err
	}
	return tuition, nil
}

// UpdateToPending: kembalikan ke PENDING, metode & paid_at dikosongkan.
func (s *TuitionService) UpdateToPending(id uuid.UUID) (*model.TuitionModel, error) {
	tuition, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}

	tuition.MarkPending()
	if err := s.Store.Save(tuition); err != nil {
		return nil, err
	}
	return tuition, nil
}
