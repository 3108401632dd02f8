// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel menyimpan HASH refresh token (bukan token mentah)
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;not null;uniqueIndex" json:"-"` // sha256 hex
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
