// Package rayid assigns a request id to every incoming request.
package rayid

import (
	"ucs/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the ray id in requests and responses.
const HeaderName = "X-Ray-ID"

// New returns a middleware that reuses the caller's X-Ray-ID or generates a
// new one, stores it in Locals and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := utils.CopyString(c.Get(HeaderName))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
