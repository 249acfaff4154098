package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freelancehub/api/internal/utils"
)

// AuthCookieName is the cookie the login handlers set.
const AuthCookieName = "fh_token"

func JWTFromCookie(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(AuthCookieName)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
