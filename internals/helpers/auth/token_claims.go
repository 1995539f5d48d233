// internals/helpers/auth/token_claims.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Locals yang diisi oleh middleware auth setelah JWT valid.
const (
	LocalsUserID   = "user_id"
	LocalsRole     = "role"
	LocalsSchoolID = "school_id"
)

func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsRole).(string); ok {
		return v
	}
	return ""
}

func IsSuperAdmin(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleSuperAdmin
}

func parseUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	raw, ok := c.Locals(key).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - klaim "+key+" tidak ada di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - klaim "+key+" bukan UUID")
	}
	return id, nil
}

// GetSchoolIDFromToken: tenant scope pemanggil. Super-admin tidak punya
// school_id; pemanggil yang wajib tenant harus pakai ini.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return parseUUIDFromLocals(c, LocalsSchoolID)
}

// GetUserIDFromToken: id entity pemilik token (admin/teacher/student).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return parseUUIDFromLocals(c, LocalsUserID)
}
