// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	d "schoolku_backend/internals/features/school/timetable/dto"
	"schoolku_backend/internals/features/school/timetable/engine"
	m "schoolku_backend/internals/features/school/timetable/model"
	svc "schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.TimetableService
}

func New(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{
		DB:       db,
		Validate: v,
		Service:  svc.New(svc.NewGormStore(db)),
	}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// resolveDayYear membaca ?day= & ?year= dengan default: hari ini + wajib year.
func resolveDayYear(c *fiber.Ctx) (day, year string, err error) {
	day = strings.ToLower(strings.TrimSpace(c.Query("day")))
	if day == "" {
		day = constants.SchoolDayToday(time.Now())
		if day == "" {
			return "", "", fmt.Errorf("hari ini Minggu — sertakan ?day= eksplisit")
		}
	}
	if !constants.IsSchoolDay(day) {
		return "", "", fmt.Errorf("day %q tidak valid (monday..saturday)", day)
	}
	year = strings.TrimSpace(c.Query("year"))
	if year == "" {
		return "", "", fmt.Errorf("query year wajib (label tahun ajaran, mis. 2024-2025)")
	}
	return day, year, nil
}

/* =========================
   Save (admin)
   ========================= */

// SaveDaySchedule: terima satu hari penuh untuk satu kelas, jalankan
// engine konsistensi, lalu upsert atomik. 409 + descriptor saat konflik.
func (ctl *TimetableController) SaveDaySchedule(c *fiber.Ctx) error {
	// 🔐 Guard role: hanya admin yang boleh menyusun jadwal
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorAdmin("timetable"))
	}

	// 1) Body
	var req d.SaveDayScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Timetable.Save] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// 2) Validasi payload
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
		}
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "class_id bukan UUID valid")
	}
	day := strings.ToLower(strings.TrimSpace(req.Day))

	// 3) Konversi periode (validasi jam ketat, sebelum I/O apapun)
	periods, docs, err := req.ToEnginePeriods()
	if err != nil {
		var malformed *engine.MalformedTimeError
		if errors.As(err, &malformed) {
			return helper.JsonValidationError(c, map[string][]string{
				"periods": {err.Error()},
			})
		}
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// 4) Engine + commit
	stored, err := ctl.Service.SaveDaySchedule(c.UserContext(), classID, day, req.AcademicYear, periods, docs)
	if err != nil {
		if descriptor, ok := d.DescribeConflict(err); ok {
			return helper.JsonConflict(c, err.Error(), descriptor)
		}
		if errors.Is(err, svc.ErrConcurrentModification) {
			return helper.JsonError(c, http.StatusConflict, err.Error())
		}
		return helper.WritePGError(c, err)
	}

	resp, err := d.NewDayScheduleResponse(stored)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Jadwal hari tersimpan", resp)
}

/* =========================
   Read (semua role)
   ========================= */

// GetClassSchedule: jadwal satu kelas satu hari.
func (ctl *TimetableController) GetClassSchedule(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	day, year, err := resolveDayYear(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := svc.NewGormStore(ctl.DB).FindOwnSchedule(c.UserContext(), classID, day, year)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if row == nil {
		return helper.JsonError(c, http.StatusNotFound, "jadwal belum disusun")
	}

	resp, err := d.NewDayScheduleResponse(row)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", resp)
}

// GetClassWeek: semua hari tersimpan untuk satu kelas satu tahun ajaran.
func (ctl *TimetableController) GetClassWeek(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		return helper.JsonError(c, http.StatusBadRequest, "query year wajib")
	}

	var rows []m.DayScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("day_schedule_class_id = ? AND day_schedule_academic_year = ?", classID, year).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.DayScheduleResponse, 0, len(rows))
	for i := range rows {
		resp, err := d.NewDayScheduleResponse(&rows[i])
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		out = append(out, resp)
	}
	return helper.JsonList(c, "", out, nil)
}

/* =========================
   Live status
   ========================= */

// LiveStatus: periode berjalan & berikutnya untuk satu kelas.
// ?at=HH:MM opsional (default jam server).
func (ctl *TimetableController) LiveStatus(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	day, year, err := resolveDayYear(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	nowMinutes := time.Now().Hour()*60 + time.Now().Minute()
	if at := strings.TrimSpace(c.Query("at")); at != "" {
		v, err := engine.ParseClock(at)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		nowMinutes = v
	}

	current, next, found, err := ctl.Service.LiveStatus(c.UserContext(), classID, day, year, nowMinutes)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !found {
		return helper.JsonError(c, http.StatusNotFound, "jadwal belum disusun")
	}

	return helper.JsonOK(c, "", d.LiveStatusResponse{
		At:      engine.FormatClock(nowMinutes),
		Current: current,
		Next:    next,
	})
}

/* =========================
   View gabungan per guru
   ========================= */

// TeacherTimetable: semua slot mengajar seorang guru pada satu hari,
// digabung lintas kelas dan diurutkan waktu.
func (ctl *TimetableController) TeacherTimetable(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	day, year, err := resolveDayYear(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	merged, err := ctl.Service.TeacherDaySchedule(c.UserContext(), teacherID, day, year)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", merged, nil)
}
