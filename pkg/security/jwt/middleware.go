package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Verifier validates a token string and returns the subject user id.
type Verifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

const localsUserID = "userID"

// NewAuthMiddleware returns a Fiber middleware that validates a Bearer token
// from the Authorization header. On success the verified user id is stored
// in locals; on any failure the request is rejected with 401 before the
// next handler runs.
func NewAuthMiddleware(verifier Verifier, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"msg": "No token, authorization denied"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"msg": "No token, authorization denied"})
		}
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"msg": "Token is not valid"})
		}
		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// UserID returns the identity attached by the auth middleware. ok is false
// when the request never passed the middleware.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localsUserID).(uuid.UUID)
	return id, ok
}
