package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"omshanti_backend/internals/configs"
)

// RequestLogger emits one structured line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		configs.GetLogger().WithFields(logrus.Fields{
			"reqid":    c.Locals("reqid"),
			"method":   c.Method(),
			"path":     c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
			"ip":       c.IP(),
		}).Info("request")

		return err
	}
}
