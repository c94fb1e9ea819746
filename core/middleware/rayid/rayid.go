// Package rayid assigns every request a unique id for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the header carrying the request id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is where the id is stored on the request context, read back
	// by logger.WithRayID.
	LocalsKey = "ray_id"
)

// New creates the middleware. An incoming X-Ray-ID is reused so ids survive
// proxy hops; otherwise a fresh UUID is generated. The id lands in the
// request locals and in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
