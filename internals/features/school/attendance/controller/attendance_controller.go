// file: internals/features/school/attendance/controller/attendance_controller.go
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
	d "schoolku_backend/internals/features/school/attendance/dto"
	m "schoolku_backend/internals/features/school/attendance/model"
	svc "schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	// Now dipisah supaya jendela pengisian bisa diuji deterministik
	Now func() time.Time
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v, Now: time.Now}
}

func canWriteAttendance(c *fiber.Ctx) bool {
	return helper.IsTeacher(c) || helper.IsAdmin(c)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Open session (teacher)
   ========================= */

// OpenSession membuka sesi absensi (kelas, tanggal). Idempoten per kunci:
// sesi kedua untuk pasangan yang sama ditolak 409.
func (ctl *AttendanceController) OpenSession(c *fiber.Ctx) error {
	if !canWriteAttendance(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorTeacher("absensi"))
	}

	var req d.OpenSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "format date harus YYYY-MM-DD")
	}

	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	window := req.WindowMinutes
	if window <= 0 {
		window = svc.DefaultMarkingWindowMinutes
	}

	session := m.AttendanceSessionModel{
		AttendanceSessionClassID:       req.ClassID,
		AttendanceSessionDate:          date,
		AttendanceSessionTeacherID:     teacherID,
		AttendanceSessionOpenedAt:      ctl.Now(),
		AttendanceSessionWindowMinutes: window,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&session).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict,
				"Sesi absensi kelas ini untuk tanggal tersebut sudah dibuka")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Sesi absensi dibuka", d.NewSessionResponse(&session))
}

/* =========================
   Mark (teacher, windowed)
   ========================= */

// Mark menulis status kehadiran banyak siswa untuk satu sesi. Ditolak 409
// bila jendela pengisian sudah lewat; menulis ulang siswa yang sama
// mengganti statusnya (upsert).
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	if !canWriteAttendance(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorTeacher("absensi"))
	}
	sessionID, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "session_id tidak valid")
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var session m.AttendanceSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("attendance_session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Sesi absensi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	now := ctl.Now()
	window := time.Duration(session.AttendanceSessionWindowMinutes) * time.Minute
	if !svc.WithinMarkingWindow(session.AttendanceSessionOpenedAt, window, now) {
		return helper.JsonError(c, http.StatusConflict,
			"⏰ Jendela pengisian absensi sudah ditutup")
	}

	entries := make([]m.AttendanceEntryModel, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, m.AttendanceEntryModel{
			AttendanceEntrySessionID: sessionID,
			AttendanceEntryStudentID: e.StudentID,
			AttendanceEntryStatus:    e.Status,
			AttendanceEntryNote:      e.Note,
			AttendanceEntryMarkedAt:  now,
		})
	}

	// Upsert per (session, student): tulis ulang = ganti status
	err = ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_entry_session_id"},
				{Name: "attendance_entry_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_entry_status",
				"attendance_entry_note",
				"attendance_entry_marked_at",
				"attendance_entry_updated_at",
			}),
		}).
		Create(&entries).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, d.NewEntryResponse(&entries[i]))
	}
	return helper.JsonOK(c, "Absensi tersimpan", out)
}

/* =========================
   Read
   ========================= */

// GetSession mengembalikan sesi + seluruh entrinya.
func (ctl *AttendanceController) GetSession(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "session_id tidak valid")
	}

	var session m.AttendanceSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("attendance_session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Sesi absensi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var rows []m.AttendanceEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("attendance_entry_session_id = ?", sessionID).
		Order("attendance_entry_marked_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	entries := make([]d.EntryResponse, 0, len(rows))
	for i := range rows {
		entries = append(entries, d.NewEntryResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Detail sesi absensi", d.SessionDetailResponse{
		Session: d.NewSessionResponse(&session),
		Entries: entries,
	})
}

// ListSessions: sesi satu kelas, opsional filter ?date=YYYY-MM-DD.
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "class_id tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&m.AttendanceSessionModel{}).
		Where("attendance_session_class_id = ?", classID)
	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "format date harus YYYY-MM-DD")
		}
		tx = tx.Where("attendance_session_date = ?", date)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.AttendanceSessionModel
	if err := tx.Order("attendance_session_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSessionResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar sesi absensi", out, &pg)
}
