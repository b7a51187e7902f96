package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/bookings"
)

const claimsKey = "claims"

// Auth resolves the bearer token into claims and stores them in the request
// locals. Missing, malformed, expired or badly signed tokens yield 401.
func Auth(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := authSvc.ValidateJWT(c.Context(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(claimsKey, claims)

		return c.Next()
	}
}

// RequireRole gates a route on the role embedded in the token at issuance
// time. Role changes made after issuance take effect only after re-login.
func RequireRole(role auth.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		if claims.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}

		return c.Next()
	}
}

// Claims returns the verified claims stored by Auth, or nil.
func Claims(c *fiber.Ctx) *auth.JWTClaims {
	claims, _ := c.Locals(claimsKey).(*auth.JWTClaims)
	return claims
}

// Actor converts the stored claims into a policy actor.
func Actor(c *fiber.Ctx) (bookings.Actor, error) {
	claims := Claims(c)
	if claims == nil {
		return bookings.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	id, err := claims.UserID()
	if err != nil {
		return bookings.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	return bookings.Actor{ID: id, Role: claims.Role}, nil
}
