package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"omshanti_backend/internals/configs"
	"omshanti_backend/internals/constants"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}
	// cookie fallback for the dashboard
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("no token provided")
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func validateExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}

// CenterAuth guards center-admin routes. On success the tenant identity is
// stored in locals and every downstream query is scoped by it.
func CenterAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims, err := parseClaims(tokenString, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if err := validateExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}
		if claimString(claims, "role") != constants.RoleCenter {
			return fiber.NewError(fiber.StatusForbidden, "Center access required")
		}

		centerID := claimString(claims, "center_id")
		if centerID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing center_id claim")
		}

		c.Locals("center_id", centerID)
		c.Locals("center_code", claimString(claims, "center_code"))
		return c.Next()
	}
}

// SuperAdminAuth guards the oversight routes.
func SuperAdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.SuperAdminJWTSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims, err := parseClaims(tokenString, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if err := validateExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}
		if claimString(claims, "role") != constants.RoleSuperAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Super admin access required")
		}

		adminID := claimString(claims, "super_admin_id")
		if adminID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing super_admin_id claim")
		}

		c.Locals("super_admin_id", adminID)
		return c.Next()
	}
}
