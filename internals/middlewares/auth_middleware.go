// internals/middlewares/auth_middleware.go
package middlewares

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/configs"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1]), nil
		}
	}
	// fallback: cookie (web app lama)
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Authorization header kosong")
}

// AuthMiddleware: parse + verifikasi JWT, isi locals user_id/role/school_id.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0).Add(30 * time.Second)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
		}

		if v, ok := claims["user_id"].(string); ok {
			c.Locals(helperAuth.LocalsUserID, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Locals(helperAuth.LocalsRole, v)
		}
		if v, ok := claims["school_id"].(string); ok {
			c.Locals(helperAuth.LocalsSchoolID, v)
		}

		return c.Next()
	}
}

// RequireRoles: guard per route-group, dipasang SETELAH AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak untuk role "+role)
	}
}
