// file: internals/features/school/timetable/model/day_schedule_model.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   DayScheduleModel — map ke tabel day_schedules
   Satu baris = satu dokumen jadwal harian satu kelas.
   Unik per (class_id, day_of_week, academic_year); daftar
   periode disimpan utuh sebagai JSONB dan diganti wholesale
   setiap save (tidak ada partial update periode).
   ======================================================= */

type DayScheduleModel struct {
	// PK
	DayScheduleID uuid.UUID `json:"day_schedule_id" gorm:"type:uuid;primaryKey;column:day_schedule_id;default:gen_random_uuid()"`

	// Kunci dokumen
	DayScheduleClassID      uuid.UUID `json:"day_schedule_class_id" gorm:"type:uuid;not null;column:day_schedule_class_id;uniqueIndex:uq_day_schedules_key"`
	DayScheduleDayOfWeek    string    `json:"day_schedule_day_of_week" gorm:"type:varchar(10);not null;column:day_schedule_day_of_week;uniqueIndex:uq_day_schedules_key"`
	DayScheduleAcademicYear string    `json:"day_schedule_academic_year" gorm:"type:varchar(20);not null;column:day_schedule_academic_year;uniqueIndex:uq_day_schedules_key"`

	// Dokumen periode (JSONB, diganti utuh saat upsert)
	DaySchedulePeriods datatypes.JSON `json:"day_schedule_periods" gorm:"type:jsonb;not null;column:day_schedule_periods"`

	// Timestamps eksplisit (auto create/update)
	DayScheduleCreatedAt time.Time `json:"day_schedule_created_at" gorm:"column:day_schedule_created_at;not null;autoCreateTime"`
	DayScheduleUpdatedAt time.Time `json:"day_schedule_updated_at" gorm:"column:day_schedule_updated_at;not null;autoUpdateTime"`
}

func (DayScheduleModel) TableName() string {
	return "day_schedules"
}

/* =======================================================
   PeriodDoc — bentuk elemen JSONB day_schedule_periods
   ======================================================= */

type PeriodDoc struct {
	PeriodNumber int        `json:"period_number"`
	StartTime    string     `json:"start_time"` // "HH:MM"
	EndTime      string     `json:"end_time"`   // "HH:MM"
	PeriodType   string     `json:"period_type"`
	SubjectID    *uuid.UUID `json:"subject_id,omitempty"`
	TeacherID    *uuid.UUID `json:"teacher_id,omitempty"`
}

// Periods mendekode kolom JSONB jadi []PeriodDoc.
func (m *DayScheduleModel) Periods() ([]PeriodDoc, error) {
	if len(m.DaySchedulePeriods) == 0 {
		return nil, nil
	}
	var docs []PeriodDoc
	if err := json.Unmarshal(m.DaySchedulePeriods, &docs); err != nil {
		return nil, fmt.Errorf("jsonb periods rusak: %w", err)
	}
	return docs, nil
}

// SetPeriods meng-encode []PeriodDoc ke kolom JSONB.
func (m *DayScheduleModel) SetPeriods(docs []PeriodDoc) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	m.DaySchedulePeriods = datatypes.JSON(raw)
	return nil
}
