// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"drivetube-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": apperr.MsgTokenMissing})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_secret"
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": apperr.MsgUnauthorized})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": apperr.MsgUnauthorized})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("user_role", claims["role"])
	return ctx.Next()
}

// RoleMiddleware gates a route group to the given roles. It must run after
// JwtMiddleware so the role claim is already in Locals.
func RoleMiddleware(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("user_role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": apperr.MsgAccessDenied})
	}
}
