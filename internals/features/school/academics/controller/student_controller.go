// file: internals/features/school/academics/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/academics/dto"
	m "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

/* =========================
   Admit (admin, multipart)
   ========================= */

// Admit menerima pendaftaran siswa baru. Body multipart: field teks +
// foto opsional di field "photo" (jpeg/png), dikonversi jadi thumbnail
// webp sebelum disimpan.
func (ctl *StudentController) Admit(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("admissions"))
	}

	var req d.AdmitStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var photo []byte
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		photo, err = helper.ConvertToWebPThumbnail(fh, 256)
		if err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	student := m.StudentModel{
		StudentUserID:       req.UserID,
		StudentFullName:     strings.TrimSpace(req.FullName),
		StudentNIS:          strings.TrimSpace(req.NIS),
		StudentClassID:      req.ClassID,
		StudentAcademicYear: strings.TrimSpace(req.AcademicYear),
		StudentStatus:       m.StudentStatusActive,
		StudentPhotoWebP:    photo,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", d.NewStudentResponse(&student))
}

/* =========================
   List & Detail
   ========================= */

// List mendukung filter ?class_id= & ?status= plus paging standar.
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.StudentModel{})
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("student_class_id = ?", id)
	}
	if status := strings.ToLower(strings.TrimSpace(c.Query("status"))); status != "" {
		tx = tx.Where("student_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.StudentModel
	if err := tx.Order("student_full_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewStudentResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar siswa", out, &pg)
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id siswa tidak valid")
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail siswa", d.NewStudentResponse(&student))
}

// GetPhoto mengembalikan thumbnail webp siswa apa adanya.
func (ctl *StudentController) GetPhoto(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id siswa tidak valid")
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("student_photo_webp").
		Where("student_id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if len(student.StudentPhotoWebP) == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Siswa belum punya foto")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(student.StudentPhotoWebP)
}

/* =========================
   Update & Delete (admin)
   ========================= */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data siswa"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id siswa tidak valid")
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.FullName != nil {
		student.StudentFullName = strings.TrimSpace(*req.FullName)
	}
	if req.ClassID != nil {
		student.StudentClassID = req.ClassID
	}
	if req.UserID != nil {
		student.StudentUserID = req.UserID
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", d.NewStudentResponse(&student))
}

// UpdatePhoto mengganti thumbnail foto siswa (multipart field "photo").
func (ctl *StudentController) UpdatePhoto(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data siswa"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id siswa tidak valid")
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.JsonError(c, http.StatusBadRequest, "field photo wajib diisi")
	}
	photo, err := helper.ConvertToWebPThumbnail(fh, 256)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_photo_webp", photo)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Foto siswa diperbarui", fiber.Map{"student_id": id})
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data siswa"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id siswa tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).Delete(&m.StudentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}
