// file: internals/features/school/timetable/dto/day_schedule_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetable/engine"
	m "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Request DTOs
   - Jam dikirim string "HH:MM" biar simpel dari FE
   ======================================================= */

type SavePeriodRequest struct {
	PeriodNumber int    `json:"period_number" validate:"required,gte=1"`
	StartTime    string `json:"start_time"    validate:"required"`
	EndTime      string `json:"end_time"      validate:"required"`
	PeriodType   string `json:"period_type"   validate:"required,oneof=class break assembly other"`

	// Wajib hanya untuk period_type=class
	SubjectID *string `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	TeacherID *string `json:"teacher_id,omitempty" validate:"omitempty,uuid4"`
}

type SaveDayScheduleRequest struct {
	ClassID      string              `json:"class_id"      validate:"required,uuid4"`
	Day          string              `json:"day"           validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	AcademicYear string              `json:"academic_year" validate:"required,min=4,max=20"`
	Periods      []SavePeriodRequest `json:"periods"       validate:"required,min=1,dive"`
}

// ToEnginePeriods memvalidasi isi periode dan menghasilkan dua bentuk:
// []engine.Period (menit, untuk checker) dan []model.PeriodDoc (dokumen
// yang disimpan). Gagal di sini = ValidationError, belum ada I/O.
func (r *SaveDayScheduleRequest) ToEnginePeriods() ([]engine.Period, []m.PeriodDoc, error) {
	seen := make(map[int]bool, len(r.Periods))
	eng := make([]engine.Period, 0, len(r.Periods))
	docs := make([]m.PeriodDoc, 0, len(r.Periods))

	for i := range r.Periods {
		p := &r.Periods[i]

		if seen[p.PeriodNumber] {
			return nil, nil, fmt.Errorf("period_number %d duplikat dalam satu hari", p.PeriodNumber)
		}
		seen[p.PeriodNumber] = true

		start, err := engine.ParseClock(p.StartTime)
		if err != nil {
			return nil, nil, fmt.Errorf("periode %d: %w", p.PeriodNumber, err)
		}
		end, err := engine.ParseClock(p.EndTime)
		if err != nil {
			return nil, nil, fmt.Errorf("periode %d: %w", p.PeriodNumber, err)
		}
		if end <= start {
			return nil, nil, fmt.Errorf("periode %d: end_time harus setelah start_time", p.PeriodNumber)
		}

		ptype := engine.PeriodType(strings.ToLower(strings.TrimSpace(p.PeriodType)))
		if !engine.ValidPeriodType(ptype) {
			return nil, nil, fmt.Errorf("periode %d: period_type %q tidak dikenal", p.PeriodNumber, p.PeriodType)
		}

		ep := engine.Period{
			Number: p.PeriodNumber,
			Start:  start,
			End:    end,
			Type:   ptype,
		}
		doc := m.PeriodDoc{
			PeriodNumber: p.PeriodNumber,
			StartTime:    engine.FormatClock(start),
			EndTime:      engine.FormatClock(end),
			PeriodType:   string(ptype),
		}

		if ptype == engine.PeriodClass {
			// class wajib bawa subject + teacher
			if p.SubjectID == nil || strings.TrimSpace(*p.SubjectID) == "" {
				return nil, nil, fmt.Errorf("periode %d: subject_id wajib untuk period_type=class", p.PeriodNumber)
			}
			if p.TeacherID == nil || strings.TrimSpace(*p.TeacherID) == "" {
				return nil, nil, fmt.Errorf("periode %d: teacher_id wajib untuk period_type=class", p.PeriodNumber)
			}
			subjectID, err := uuid.Parse(strings.TrimSpace(*p.SubjectID))
			if err != nil {
				return nil, nil, fmt.Errorf("periode %d: subject_id bukan UUID valid", p.PeriodNumber)
			}
			teacherID, err := uuid.Parse(strings.TrimSpace(*p.TeacherID))
			if err != nil {
				return nil, nil, fmt.Errorf("periode %d: teacher_id bukan UUID valid", p.PeriodNumber)
			}
			ep.SubjectID = subjectID
			ep.TeacherID = teacherID
			doc.SubjectID = &subjectID
			doc.TeacherID = &teacherID
		}
		// non-class: subject/teacher diabaikan (tidak disimpan)

		eng = append(eng, ep)
		docs = append(docs, doc)
	}
	return eng, docs, nil
}

/* =======================================================
   Converter dokumen tersimpan → engine
   ======================================================= */

// DocsToEngine dipakai saat memeriksa jadwal kelas lain yang sudah
// tersimpan: dokumen JSONB didecode lalu dinaikkan ke bentuk engine.
func DocsToEngine(docs []m.PeriodDoc) ([]engine.Period, error) {
	out := make([]engine.Period, 0, len(docs))
	for _, d := range docs {
		start, err := engine.ParseClock(d.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := engine.ParseClock(d.EndTime)
		if err != nil {
			return nil, err
		}
		ep := engine.Period{
			Number: d.PeriodNumber,
			Start:  start,
			End:    end,
			Type:   engine.PeriodType(d.PeriodType),
		}
		if d.SubjectID != nil {
			ep.SubjectID = *d.SubjectID
		}
		if d.TeacherID != nil {
			ep.TeacherID = *d.TeacherID
		}
		out = append(out, ep)
	}
	return out, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type DayScheduleResponse struct {
	DayScheduleID uuid.UUID     `json:"day_schedule_id"`
	ClassID       uuid.UUID     `json:"class_id"`
	Day           string        `json:"day"`
	AcademicYear  string        `json:"academic_year"`
	Periods       []m.PeriodDoc `json:"periods"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

func NewDayScheduleResponse(row *m.DayScheduleModel) (DayScheduleResponse, error) {
	docs, err := row.Periods()
	if err != nil {
		return DayScheduleResponse{}, err
	}
	return DayScheduleResponse{
		DayScheduleID: row.DayScheduleID,
		ClassID:       row.DayScheduleClassID,
		Day:           row.DayScheduleDayOfWeek,
		AcademicYear:  row.DayScheduleAcademicYear,
		Periods:       docs,
		CreatedAt:     row.DayScheduleCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     row.DayScheduleUpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

type LiveStatusResponse struct {
	At      string       `json:"at"` // "HH:MM" yang dipakai proyeksi
	Current *m.PeriodDoc `json:"current"`
	Next    *m.PeriodDoc `json:"next"`
}

/* =======================================================
   Conflict descriptor (badan response 409)
   ======================================================= */

type ConflictDescriptor struct {
	Kind      string     `json:"kind"` // intra_day | cross_class
	PeriodA   int        `json:"period_a,omitempty"`
	PeriodB   int        `json:"period_b,omitempty"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	ClassID   *uuid.UUID `json:"class_id,omitempty"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
}

// DescribeConflict menerjemahkan error engine jadi descriptor mesin.
// Mengembalikan false kalau err bukan error konflik.
func DescribeConflict(err error) (ConflictDescriptor, bool) {
	var intra *engine.IntraDayConflictError
	if errors.As(err, &intra) {
		return ConflictDescriptor{
			Kind:      "intra_day",
			PeriodA:   intra.PeriodA,
			PeriodB:   intra.PeriodB,
			StartTime: engine.FormatClock(intra.Start),
			EndTime:   engine.FormatClock(intra.End),
		}, true
	}
	var cross *engine.CrossClassConflictError
	if errors.As(err, &cross) {
		teacherID := cross.TeacherID
		classID := cross.ClassID
		return ConflictDescriptor{
			Kind:      "cross_class",
			TeacherID: &teacherID,
			ClassID:   &classID,
			StartTime: engine.FormatClock(cross.Start),
			EndTime:   engine.FormatClock(cross.End),
		}, true
	}
	return ConflictDescriptor{}, false
}
