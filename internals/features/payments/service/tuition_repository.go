// internals/features/payments/service/tuition_repository.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "buspay_backend/internals/features/payments/model"
)

// TuitionRepository: implementasi TuitionStore di atas GORM.
type TuitionRepository struct {
	DB *gorm.DB
}

func NewTuitionRepository(db *gorm.DB) *TuitionRepository {
	return &TuitionRepository{DB: db}
}

func (r *TuitionRepository) ListByPaymentAndStatus(paymentID uuid.UUID, status model.TuitionStatus) ([]TuitionRow, error) {
	var rows []TuitionRow
	err := r.DB.Table("tuitions AS t").
		Joins("JOIN students AS st ON st.student_id = t.tuition_student_id").
		Where("t.tuition_payment_id = ? AND t.tuition_status = ?", paymentID, status).
		Select("t.*, st.student_name AS student_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TuitionRepository) FindByID(id uuid.UUID) (*model.TuitionModel, error) {
	var row model.TuitionModel
	if err := r.DB.Where("tuition_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTuitionNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *TuitionRepository) Save(tuition *model.TuitionModel) error {
	return r.DB.Save(tuition).Error
}
