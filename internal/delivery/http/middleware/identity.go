package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/travelog-service/internal/domain"
)

// IdentityKey is the locals key the identity is stored under.
const IdentityKey = "identity"

// Identity resolves the caller from the X-User-ID header set by the gateway.
// A missing or malformed header yields an anonymous identity, not an error;
// endpoints that need authentication enforce it themselves.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := domain.Identity{}

		if raw := c.Get("X-User-ID"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				identity = domain.Identity{ID: id, Authenticated: true}
			}
		}

		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// IdentityFrom reads the identity stored by the Identity middleware.
func IdentityFrom(c *fiber.Ctx) domain.Identity {
	if identity, ok := c.Locals(IdentityKey).(domain.Identity); ok {
		return identity
	}
	return domain.Identity{}
}
