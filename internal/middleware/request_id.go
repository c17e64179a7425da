package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CtxRequestID    = "request_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestIDMiddleware attaches an id to every request, honoring one supplied
// by the caller, and echoes it back in the response header.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(CtxRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestID returns the id assigned to the current request, empty if the
// middleware did not run.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxRequestID).(string)
	return id
}
