// file: internals/features/school/academics/controller/subject_controller.go
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

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("mapel"))
	}

	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	subject := m.SubjectModel{
		SubjectName:     strings.TrimSpace(req.SubjectName),
		SubjectCode:     strings.ToUpper(strings.TrimSpace(req.SubjectCode)),
		SubjectIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", d.NewSubjectResponse(&subject))
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.SubjectModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("subject_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.SubjectModel
	if err := tx.Order("subject_code ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSubjectResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar mapel", out, &pg)
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("mapel"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id mapel tidak valid")
	}

	var req d.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", id).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.SubjectName != nil {
		subject.SubjectName = strings.TrimSpace(*req.SubjectName)
	}
	if req.SubjectCode != nil {
		subject.SubjectCode = strings.ToUpper(strings.TrimSpace(*req.SubjectCode))
	}
	if req.IsActive != nil {
		subject.SubjectIsActive = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&subject).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", d.NewSubjectResponse(&subject))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("mapel"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id mapel tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", id).Delete(&m.SubjectModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}
