// file: internals/helpers/token.go
package helper

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys Locals yang diisi middleware auth
const (
	LocRawToken = "raw_token"
	LocUserID   = "user_id"
	LocRole     = "role"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetRawAccessToken menyimpan raw token ke Locals (dipanggil middleware auth)
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetRefreshTokenFromCookie membaca refresh token dari cookie httpOnly.
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// GetUserIDFromToken membaca user_id yang diset middleware auth.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(LocUserID)
	if raw == nil {
		return uuid.Nil, fmt.Errorf("user_id tidak ada di token")
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", raw))
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id di token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken membaca role yang diset middleware auth.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == "admin" }
func IsTeacher(c *fiber.Ctx) bool { return GetRoleFromToken(c) == "teacher" }
func IsStudent(c *fiber.Ctx) bool { return GetRoleFromToken(c) == "student" }
