package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/parcelbook/internal/config"
	"github.com/example/parcelbook/internal/models"
	"github.com/example/parcelbook/internal/store"
	"github.com/example/parcelbook/internal/utils"
)

const (
	emailContextKey = "currentUserEmail"
	userContextKey  = "currentUser"
)

// RequireAuth validates JWT bearer tokens and loads the verified email into
// context.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		email, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(emailContextKey, email)
		return c.Next()
	}
}

// RequireRole resolves the authenticated user and rejects the request unless
// their role matches. The role comes from the store on every request, never
// from the token, so role changes take effect immediately.
func RequireRole(users *store.UserStore, role models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := CurrentEmail(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			return err
		}
		if user == nil || user.UserType != role {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// CurrentEmail extracts the verified email from context.
func CurrentEmail(c *fiber.Ctx) (string, bool) {
	if email, ok := c.Locals(emailContextKey).(string); ok && email != "" {
		return email, true
	}
	return "", false
}

// CurrentUser extracts the role-checked user record from context. Only set
// on routes behind RequireRole.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	if user, ok := c.Locals(userContextKey).(*models.User); ok {
		return user, true
	}
	return nil, false
}
