// file: internals/features/school/academics/service/promotion.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/academics/dto"
	m "schoolku_backend/internals/features/school/academics/model"
)

// FinalLevel adalah tingkat terakhir; naik dari sini berarti lulus.
const FinalLevel = 12

var ErrClassNotFound = errors.New("kelas tidak ditemukan")

/* =========================
   Aturan kenaikan (pure)
   ========================= */

// NextLevel memetakan tingkat kelas saat kenaikan tahun ajaran:
// level N → N+1, level terakhir → lulus (graduated=true, next tidak berlaku).
func NextLevel(level, finalLevel int) (next int, graduated bool) {
	if level >= finalLevel {
		return 0, true
	}
	return level + 1, false
}

// NextClassName menurunkan nama kelas tingkat berikut dari nama lama,
// mis. "7A" → "8A". Kalau nama tidak berawalan angka tingkat, pakai
// format "<level> <sisa>" apa adanya.
func NextClassName(oldName string, oldLevel, newLevel int) string {
	prefix := fmt.Sprintf("%d", oldLevel)
	if strings.HasPrefix(oldName, prefix) {
		return fmt.Sprintf("%d%s", newLevel, oldName[len(prefix):])
	}
	return fmt.Sprintf("%d %s", newLevel, oldName)
}

/* =========================
   Service
   ========================= */

type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

// PromoteClass menaikkan seluruh siswa aktif satu kelas ke tahun ajaran
// berikutnya dalam satu transaksi: kelas tujuan dibuat bila belum ada,
// siswa dipindah; kelas tingkat akhir → semua siswa jadi alumni.
func (s *PromotionService) PromoteClass(ctx context.Context, req d.PromoteClassRequest) (*d.PromoteClassResponse, error) {
	var resp d.PromoteClassResponse

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from m.ClassModel
		if err := tx.Where("class_id = ?", req.ClassID).First(&from).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}
		resp.FromClassID = from.ClassID

		next, graduated := NextLevel(from.ClassLevel, FinalLevel)
		if graduated {
			// 🎓 Tingkat akhir: semua siswa aktif jadi alumni, lepas dari kelas
			res := tx.Model(&m.StudentModel{}).
				Where("student_class_id = ? AND student_status = ?", from.ClassID, m.StudentStatusActive).
				Updates(map[string]any{
					"student_status":   m.StudentStatusAlumni,
					"student_class_id": nil,
				})
			if res.Error != nil {
				return res.Error
			}
			resp.Graduated = true
			resp.StudentsMoved = res.RowsAffected
			return nil
		}

		// Cari / buat kelas tujuan di tahun ajaran berikut
		toName := NextClassName(from.ClassName, from.ClassLevel, next)
		var to m.ClassModel
		err := tx.Where("class_name = ? AND class_academic_year = ?", toName, req.NextAcademicYear).
			First(&to).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			to = m.ClassModel{
				ClassName:         toName,
				ClassLevel:        next,
				ClassAcademicYear: req.NextAcademicYear,
				ClassIsActive:     true,
			}
			if err := tx.Create(&to).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		res := tx.Model(&m.StudentModel{}).
			Where("student_class_id = ? AND student_status = ?", from.ClassID, m.StudentStatusActive).
			Updates(map[string]any{
				"student_class_id":      to.ClassID,
				"student_academic_year": req.NextAcademicYear,
			})
		if res.Error != nil {
			return res.Error
		}

		toID := to.ClassID
		resp.ToClassID = &toID
		resp.StudentsMoved = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
