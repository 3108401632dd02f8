// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	m "schoolku_backend/internals/features/users/auth/model"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken membuat JWT access dengan claim sub + role
func IssueAccessToken(user *m.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh JWT, menyimpan hash-nya di DB, dan
// memasang cookie httpOnly.
func IssueRefreshToken(db *gorm.DB, c *fiber.Ctx, user *m.UserModel) error {
	if configs.JWTRefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return err
	}

	// Simpan hash (ROTATE: satu user boleh punya beberapa sesi)
	row := m.RefreshTokenModel{
		UserID:    user.ID,
		Token:     ComputeRefreshHash(raw),
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Expires:  now.Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
	return nil
}

// ComputeRefreshHash: sha256 hex — DB tidak pernah pegang token mentah
func ComputeRefreshHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// VerifyRefreshToken memvalidasi JWT refresh + keberadaan hash di DB,
// lalu menghapus hash lama (rotation). Mengembalikan user id.
func VerifyRefreshToken(db *gorm.DB, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}

	h := ComputeRefreshHash(raw)
	var row m.RefreshTokenModel
	if err := db.Where("token = ? AND expires_at > ?", h, time.Now().UTC()).
		First(&row).Error; err != nil {
		return uuid.Nil, fmt.Errorf("refresh token tidak dikenal")
	}

	// ROTATE: hapus token lama
	if err := db.Delete(&row).Error; err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// RevokeRefreshToken menghapus hash token (logout)
func RevokeRefreshToken(db *gorm.DB, raw string) error {
	return db.Where("token = ?", ComputeRefreshHash(raw)).
		Delete(&m.RefreshTokenModel{}).Error
}

// CleanupExpiredRefreshTokens: housekeeping ringan, dipanggil dari route setup
func CleanupExpiredRefreshTokens(db *gorm.DB) error {
	return db.Where("expires_at <= ?", time.Now().UTC()).
		Delete(&m.RefreshTokenModel{}).Error
}
