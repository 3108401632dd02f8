// file: internals/features/school/marks/controller/marks_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/marks/dto"
	m "schoolku_backend/internals/features/school/marks/model"
	svc "schoolku_backend/internals/features/school/marks/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type MarksController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Now      func() time.Time
}

func New(db *gorm.DB, v *validator.Validate) *MarksController {
	return &MarksController{DB: db, Validate: v, Now: time.Now}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Terms (admin)
   ========================= */

func (ctl *MarksController) CreateTerm(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("term"))
	}

	var req d.CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	term := m.TermModel{
		TermCode:   strings.TrimSpace(req.TermCode),
		TermLockAt: req.LockAt,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&term).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	locked := svc.TermLocked(term.TermLockAt, ctl.Now())
	return helper.JsonCreated(c, "Term berhasil dibuat", d.NewTermResponse(&term, locked))
}

func (ctl *MarksController) ListTerms(c *fiber.Ctx) error {
	var rows []m.TermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("term_code ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	now := ctl.Now()
	out := make([]d.TermResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTermResponse(&rows[i], svc.TermLocked(rows[i].TermLockAt, now)))
	}
	return helper.JsonOK(c, "Daftar term", out)
}

// LockTerm memasang lock date; setelah lewat, entri nilai di term terkunci.
func (ctl *MarksController) LockTerm(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("term"))
	}
	termID, err := parseUUIDParam(c, "term_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "term_id tidak valid")
	}

	var req d.LockTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	return ctl.setTermLock(c, termID, &req.LockAt, "Term dikunci")
}

// UnlockTerm menghapus lock date (admin membuka kembali koreksi nilai).
func (ctl *MarksController) UnlockTerm(c *fiber.Ctx) error {
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("term"))
	}
	termID, err := parseUUIDParam(c, "term_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "term_id tidak valid")
	}
	return ctl.setTermLock(c, termID, nil, "Term dibuka kembali")
}

func (ctl *MarksController) setTermLock(c *fiber.Ctx, termID uuid.UUID, lockAt *time.Time, msg string) error {
	var term m.TermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("term_id = ?", termID).First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Term tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	term.TermLockAt = lockAt
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TermModel{}).
		Where("term_id = ?", termID).
		Update("term_lock_at", lockAt).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	locked := svc.TermLocked(term.TermLockAt, ctl.Now())
	return helper.JsonUpdated(c, msg, d.NewTermResponse(&term, locked))
}

/* =========================
   Marks (teacher)
   ========================= */

// UpsertMark menulis nilai (siswa, mapel, term). Band dihitung dari skor;
// ditolak 409 bila term sudah terkunci.
func (ctl *MarksController) UpsertMark(c *fiber.Ctx) error {
	if !helper.IsTeacher(c) && !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorTeacher("nilai"))
	}

	var req d.UpsertMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var term m.TermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("term_id = ?", req.TermID).First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Term tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if svc.TermLocked(term.TermLockAt, ctl.Now()) {
		return helper.JsonError(c, http.StatusConflict,
			"🔒 Term sudah dikunci, entri nilai ditolak")
	}

	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	mark := m.MarkModel{
		MarkStudentID: req.StudentID,
		MarkSubjectID: req.SubjectID,
		MarkTermID:    req.TermID,
		MarkScore:     req.Score,
		MarkBand:      svc.GradeBand(req.Score),
		MarkTeacherID: teacherID,
	}

	// Upsert per (student, subject, term)
	err = ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "mark_student_id"},
				{Name: "mark_subject_id"},
				{Name: "mark_term_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"mark_score",
				"mark_band",
				"mark_teacher_id",
				"mark_updated_at",
			}),
		}).
		Create(&mark).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Nilai tersimpan", d.NewMarkResponse(&mark))
}

// StudentMarks: seluruh nilai satu siswa, opsional filter ?term_id=.
func (ctl *MarksController) StudentMarks(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student_id tidak valid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&m.MarkModel{}).
		Where("mark_student_id = ?", studentID)
	if termStr := strings.TrimSpace(c.Query("term_id")); termStr != "" {
		termID, err := uuid.Parse(termStr)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "term_id tidak valid")
		}
		tx = tx.Where("mark_term_id = ?", termID)
	}

	var rows []m.MarkModel
	if err := tx.Order("mark_updated_at DESC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.MarkResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewMarkResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Daftar nilai siswa", out)
}
