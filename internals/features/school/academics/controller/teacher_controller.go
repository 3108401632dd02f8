// file: internals/features/school/academics/controller/teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/academics/dto"
	m "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data guru"))
	}

	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	teacher := m.TeacherModel{
		TeacherUserID:    req.UserID,
		TeacherFullName:  strings.TrimSpace(req.FullName),
		TeacherNIP:       strings.TrimSpace(req.NIP),
		TeacherSpecialty: req.Specialty,
		TeacherPhone:     req.Phone,
		TeacherIsActive:  true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Data guru berhasil dibuat", d.NewTeacherResponse(&teacher))
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.TeacherModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("teacher_full_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.TeacherModel
	if err := tx.Order("teacher_full_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTeacherResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar guru", out, &pg)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id guru tidak valid")
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail guru", d.NewTeacherResponse(&teacher))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data guru"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id guru tidak valid")
	}

	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.FullName != nil {
		teacher.TeacherFullName = strings.TrimSpace(*req.FullName)
	}
	if req.Specialty != nil {
		teacher.TeacherSpecialty = req.Specialty
	}
	if req.Phone != nil {
		teacher.TeacherPhone = req.Phone
	}
	if req.UserID != nil {
		teacher.TeacherUserID = req.UserID
	}
	if req.IsActive != nil {
		teacher.TeacherIsActive = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Data guru berhasil diperbarui", d.NewTeacherResponse(&teacher))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("data guru"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id guru tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ?", id).Delete(&m.TeacherModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"teacher_id": id})
}
