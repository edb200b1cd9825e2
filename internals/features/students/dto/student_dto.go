// internals/features/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	m "buspay_backend/internals/features/students/model"
)

/* =============== REQUESTS =============== */

// Create / Update (PUT penuh, semua field wajib dikirim ulang)
type StudentRequest struct {
	StudentName        string `json:"student_name"         validate:"required,min=2,max=100"`
	StudentPhoneNumber string `json:"student_phone_number" validate:"required,len=11,numeric"`
	StudentMajor       string `json:"student_major"        validate:"omitempty,max=100"`
	StudentCollege     string `json:"student_college"      validate:"omitempty,max=100"`
}

func (r StudentRequest) ToModel() *m.StudentModel {
	return &m.StudentModel{
		StudentName:        r.StudentName,
		StudentPhoneNumber: r.StudentPhoneNumber,
		StudentMajor:       r.StudentMajor,
		StudentCollege:     r.StudentCollege,
		StudentActive:      true,
	}
}

func (r StudentRequest) ApplyTo(mo *m.StudentModel) {
	mo.StudentName = r.StudentName
	mo.StudentPhoneNumber = r.StudentPhoneNumber
	mo.StudentMajor = r.StudentMajor
	mo.StudentCollege = r.StudentCollege
}

// PATCH /students/:id/active
type StudentActiveRequest struct {
	StudentActive *bool `json:"student_active" validate:"required"`
}

/* =============== RESPONSES =============== */

type StudentResponse struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentPhoneNumber string    `json:"student_phone_number"`
	StudentMajor       string    `json:"student_major,omitempty"`
	StudentCollege     string    `json:"student_college,omitempty"`
	StudentActive      bool      `json:"student_active"`
}

func FromModel(mo m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:          mo.StudentID,
		StudentName:        mo.StudentName,
		StudentPhoneNumber: mo.StudentPhoneNumber,
		StudentMajor:       mo.StudentMajor,
		StudentCollege:     mo.StudentCollege,
		StudentActive:      mo.StudentActive,
	}
}

func FromModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}

// Ringkasan untuk dropdown "siswa aktif untuk payment baru"
type StudentSummaryResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
}

type StudentsForPaymentResponse struct {
	Students []StudentSummaryResponse `json:"students"`
	Total    int                      `json:"total"`
}

func ForPaymentFromModels(rows []m.StudentModel) StudentsForPaymentResponse {
	items := make([]StudentSummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, StudentSummaryResponse{
			StudentID:   row.StudentID,
			StudentName: row.StudentName,
		})
	}
	return StudentsForPaymentResponse{Students: items, Total: len(items)}
}
