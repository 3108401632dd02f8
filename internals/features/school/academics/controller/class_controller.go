// file: internals/features/school/academics/controller/class_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/academics/dto"
	m "schoolku_backend/internals/features/school/academics/model"
	svc "schoolku_backend/internals/features/school/academics/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Promotion *svc.PromotionService
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{
		DB:        db,
		Validate:  v,
		Promotion: svc.NewPromotionService(db),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (admin)
   ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("kelas"))
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	class := m.ClassModel{
		ClassName:              strings.TrimSpace(req.ClassName),
		ClassLevel:             req.ClassLevel,
		ClassAcademicYear:      strings.TrimSpace(req.ClassAcademicYear),
		ClassHomeroomTeacherID: req.HomeroomTeacherID,
		ClassIsActive:          true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", d.NewClassResponse(&class))
}

/* =========================
   List & Detail
   ========================= */

// List mendukung filter ?year= & ?level= plus paging standar.
func (ctl *ClassController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassModel{})
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		tx = tx.Where("class_academic_year = ?", year)
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		tx = tx.Where("class_level = ?", level)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassModel
	if err := tx.Order("class_level ASC, class_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewClassResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar kelas", out, &pg)
}

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id kelas tidak valid")
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail kelas", d.NewClassResponse(&class))
}

/* =========================
   Update & Delete (admin)
   ========================= */

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("kelas"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id kelas tidak valid")
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.ClassName != nil {
		class.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassLevel != nil {
		class.ClassLevel = *req.ClassLevel
	}
	if req.HomeroomTeacherID != nil {
		class.ClassHomeroomTeacherID = req.HomeroomTeacherID
	}
	if req.IsActive != nil {
		class.ClassIsActive = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", d.NewClassResponse(&class))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("kelas"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id kelas tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).Delete(&m.ClassModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

/* =========================
   Promote (admin)
   ========================= */

// Promote menaikkan seluruh siswa aktif kelas ini ke tahun ajaran berikut.
func (ctl *ClassController) Promote(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("kenaikan kelas"))
	}

	var req d.PromoteClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	resp, err := ctl.Promotion.PromoteClass(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, svc.ErrClassNotFound) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Kenaikan kelas selesai", resp)
}
