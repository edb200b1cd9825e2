// internals/features/payments/service/payment_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "buspay_backend/internals/features/payments/dto"
	model "buspay_backend/internals/features/payments/model"
	studentModel "buspay_backend/internals/features/students/model"
)

// StudentDirectory: satu-satunya hal yang orkestrator butuhkan dari fitur students.
type StudentDirectory interface {
	FindActiveByIDs(ids []uuid.UUID) ([]studentModel.StudentModel, error)
}

// PaymentService: satu-satunya komponen yang boleh membuat Payment.
type PaymentService struct {
	DB       *gorm.DB
	Students StudentDirectory
}

func NewPaymentService(db *gorm.DB, students StudentDirectory) *PaymentService {
	return &PaymentService{DB: db, Students: students}
}

// Create: resolve siswa → hitung nilai → tulis payment + financial helps +
// tuitions dalam SATU transaksi. Semua validasi jalan sebelum ada write;
// kegagalan di tengah transaksi membatalkan seluruhnya.
func (s *PaymentService) Create(req dto.CreatePaymentRequest) (*model.PaymentModel, error) {
	students, err := s.Students.FindActiveByIDs(req.StudentIDs)
	if err != nil {
		return nil, err
	}

	amountToBePaid, err := CalculateAmountToBePaid(req.PaymentTotalAmount, req.HelpAmounts())
	if err != nil {
		return nil, err
	}
	tuitionAmount := CalculateTuitionAmount(amountToBePaid, len(students))

	payment := &model.PaymentModel{
		PaymentInvoiceMonth:  req.PaymentInvoiceMonth,
		PaymentInvoiceYear:   req.PaymentInvoiceYear,
		PaymentTotalAmount:   req.PaymentTotalAmount,
		PaymentTotalToBePaid: amountToBePaid,
		PaymentTuitionAmount: tuitionAmount,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Header dulu supaya dapat payment_id untuk anak-anaknya.
		// Batas atomicity eksplisit: ketiga write ini all-or-nothing.
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		helps := req.ToFinancialHelpModels(payment.PaymentID)
		if len(helps) > 0 {
			if err := tx.Create(&helps).Error; err != nil {
				return err
			}
		}

		tuitions := make([]model.TuitionModel, 0, len(students))
		for _, st := range students {
			tuitions = append(tuitions, model.NewTuition(payment.PaymentID, st.StudentID))
		}
		if err := tx.Create(&tuitions).Error; err != nil {
			return err
		}

		payment.FinancialHelps = helps
		payment.Tuitions = tuitions
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// FindByID mengembalikan payment lengkap dengan financial helps & tuitions.
func (s *PaymentService) FindByID(id uuid.UUID) (*model.PaymentModel, error) {
	var row model.PaymentModel
	err := s.DB.
		Preload("FinancialHelps").
		Preload("Tuitions").
		Where("payment_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &row, nil
}

// FindAll: halaman ringkasan payment, terbaru dulu.
func (s *PaymentService) FindAll(limit, offset int) ([]model.PaymentModel, int64, error) {
	var total int64
	if err := s.DB.Model(&model.PaymentModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PaymentModel
	if err := s.DB.
		Order("payment_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// CalculateAmounts: preview murni, tidak menyentuh DB.
func (s *PaymentService) CalculateAmounts(req dto.PaymentAmountsRequest) (*dto.PaymentAmountsResponse, error) {
	amountToBePaid, err := CalculateAmountToBePaid(req.PaymentTotalAmount, req.HelpAmounts())
	if err != nil {
		return nil, err
	}
	tuitionAmount := CalculateTuitionAmount(amountToBePaid, req.StudentsQuantity)

	return &dto.PaymentAmountsResponse{
		PaymentTotalAmount: req.PaymentTotalAmount,
		AmountToBePaid:     amountToBePaid,
		StudentsQuantity:   req.StudentsQuantity,
		TuitionAmount:      tuitionAmount,
	}, nil
}
