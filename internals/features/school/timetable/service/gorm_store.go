// file: internals/features/school/timetable/service/gorm_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "schoolku_backend/internals/features/school/timetable/model"
	helper "schoolku_backend/internals/helpers"
)

// GormScheduleStore: implementasi ScheduleStore di atas Postgres/GORM.
type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

var _ ScheduleStore = (*GormScheduleStore)(nil)

func (s *GormScheduleStore) FindSiblingSchedules(ctx context.Context, day, academicYear string, excludeClassID uuid.UUID) ([]m.DayScheduleModel, error) {
	var rows []m.DayScheduleModel
	err := s.DB.WithContext(ctx).
		Where("day_schedule_day_of_week = ? AND day_schedule_academic_year = ? AND day_schedule_class_id <> ?",
			day, academicYear, excludeClassID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormScheduleStore) FindOwnSchedule(ctx context.Context, classID uuid.UUID, day, academicYear string) (*m.DayScheduleModel, error) {
	var row m.DayScheduleModel
	err := s.DB.WithContext(ctx).
		Where("day_schedule_class_id = ? AND day_schedule_day_of_week = ? AND day_schedule_academic_year = ?",
			classID, day, academicYear).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormScheduleStore) FindSchedulesForDay(ctx context.Context, day, academicYear string) ([]m.DayScheduleModel, error) {
	var rows []m.DayScheduleModel
	err := s.DB.WithContext(ctx).
		Where("day_schedule_day_of_week = ? AND day_schedule_academic_year = ?", day, academicYear).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertSchedule: replace-or-insert via ON CONFLICT pada unique index
// (class, day, year). Dokumen periode diganti utuh — tidak pernah merge
// parsial. 23505/40001 dipetakan ke ErrConcurrentModification.
func (s *GormScheduleStore) UpsertSchedule(ctx context.Context, row *m.DayScheduleModel) error {
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "day_schedule_class_id"},
				{Name: "day_schedule_day_of_week"},
				{Name: "day_schedule_academic_year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"day_schedule_periods",
				"day_schedule_updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		if helper.IsUniqueViolation(err) || helper.IsSerializationFailure(err) {
			return ErrConcurrentModification
		}
		return err
	}
	return nil
}
