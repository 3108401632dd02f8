// file: internals/features/school/marks/model/term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   TermModel — map ke tabel terms
   Periode penilaian (semester). Setelah term_lock_at lewat,
   entri nilai di term itu terkunci; admin bisa membuka lagi
   dengan menggeser/menghapus lock.
   ======================================================= */

type TermModel struct {
	TermID uuid.UUID `json:"term_id" gorm:"type:uuid;primaryKey;column:term_id;default:gen_random_uuid()"`

	// mis. "2025-2026-ganjil"
	TermCode string `json:"term_code" gorm:"type:varchar(30);not null;column:term_code;uniqueIndex:uq_terms_code"`

	TermLockAt *time.Time `json:"term_lock_at,omitempty" gorm:"column:term_lock_at"`

	TermCreatedAt time.Time `json:"term_created_at" gorm:"column:term_created_at;not null;autoCreateTime"`
	TermUpdatedAt time.Time `json:"term_updated_at" gorm:"column:term_updated_at;not null;autoUpdateTime"`
}

func (TermModel) TableName() string {
	return "terms"
}
