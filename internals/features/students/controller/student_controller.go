package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "buspay_backend/internals/features/students/dto"
	model "buspay_backend/internals/features/students/model"
	helper "buspay_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Nomor telepon wajib unik
	var count int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_phone_number = ?", req.StudentPhoneNumber).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor telepon sudah dipakai")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Nomor telepon sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/students?page=&per_page=&active=
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 15, 100)
	active := c.QueryBool("active", true)

	base := h.DB.Model(&model.StudentModel{}).
		Where("student_active = ?", active)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := base.
		Order("student_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ================== LIST FOR PAYMENT ================== */
// GET /api/students/for-payment — semua siswa aktif, urut nama
func (h *StudentController) ListForPayment(c *fiber.Ctx) error {
	var rows []model.StudentModel
	if err := h.DB.
		Where("student_active = ?", true).
		Order("student_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.ForPaymentFromModels(rows))
}

/* ======================== GET BY ID ======================== */
// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (PUT) ======================== */
// PUT /api/students/:id
func (h *StudentController) Put(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Nomor telepon boleh sama dengan miliknya sendiri, tidak boleh milik siswa lain
	var other model.StudentModel
	err = h.DB.Where("student_phone_number = ?", req.StudentPhoneNumber).First(&other).Error
	if err == nil && other.StudentID != curr.StudentID {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor telepon sudah dipakai")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}

	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(curr))
}

/* ======================== DELETE ======================== */
// DELETE /api/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Where("student_id = ?", id).Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}

/* ================== PATCH ACTIVE STATUS ================== */
// PATCH /api/students/:id/active
func (h *StudentController) PatchActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.StudentActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_active", *req.StudentActive)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status aktif siswa berhasil diperbarui", fiber.Map{
		"student_id":     id,
		"student_active": *req.StudentActive,
	})
}

/* ================== CHECK PHONE NUMBER ================== */
// GET /api/students/check-phone-number/:phoneNumber
func (h *StudentController) CheckPhoneNumber(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Params("phoneNumber"))
	if len(phone) != 11 {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor telepon harus 11 karakter")
	}

	var count int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_phone_number = ?", phone).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{"exists": count > 0})
}
