package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claim accessors. The auth middleware stores verified claims into
// c.Locals; controllers never parse tokens themselves.

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid "+key+" in token")
	}
	return id, nil
}

// GetCenterIDFromToken returns the tenant key of the authenticated center.
func GetCenterIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "center_id")
}

// GetCenterCodeFromToken returns the human-facing center code claim.
func GetCenterCodeFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals("center_code").(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "center_code missing from token")
	}
	return v, nil
}

func GetSuperAdminIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "super_admin_id")
}
