// internals/features/students/service/student_directory.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "buspay_backend/internals/features/students/model"
)

var ErrStudentNotFound = errors.New("siswa tidak ditemukan")

// InactiveStudentError membawa ID siswa yang nonaktif supaya caller bisa
// menunjuk siswa mana yang menggagalkan pembuatan payment.
type InactiveStudentError struct {
	StudentID uuid.UUID
}

func (e *InactiveStudentError) Error() string {
	return fmt.Sprintf("siswa %s tidak aktif", e.StudentID)
}

// StudentDirectory: lookup siswa aktif untuk kebutuhan payment.
// Orkestrator payment hanya bergantung pada contract ini, bukan pada tabel students.
type StudentDirectory struct {
	DB *gorm.DB
}

func NewStudentDirectory(db *gorm.DB) *StudentDirectory {
	return &StudentDirectory{DB: db}
}

// FindActiveByIDs resolve semua ID; gagal total jika ada yang tidak ditemukan
// atau nonaktif (dicek SEBELUM ada persist apa pun di caller).
func (d *StudentDirectory) FindActiveByIDs(ids []uuid.UUID) ([]m.StudentModel, error) {
	out := make([]m.StudentModel, 0, len(ids))
	for _, id := range ids {
		var row m.StudentModel
		if err := d.DB.Where("student_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			return nil, err
		}
		if !row.StudentActive {
			return nil, &InactiveStudentError{StudentID: row.StudentID}
		}
		out = append(out, row)
	}
	return out, nil
}
