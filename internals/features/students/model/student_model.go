package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName        string `gorm:"column:student_name;type:text;not null" json:"student_name"`
	StudentPhoneNumber string `gorm:"column:student_phone_number;type:varchar(11);not null;uniqueIndex:uq_students_phone" json:"student_phone_number"`
	StudentMajor       string `gorm:"column:student_major;type:text" json:"student_major"`
	StudentCollege     string `gorm:"column:student_college;type:text" json:"student_college"`

	// Siswa nonaktif tidak boleh masuk payment baru
	StudentActive bool `gorm:"column:student_active;not null;default:true" json:"student_active"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "students" }
