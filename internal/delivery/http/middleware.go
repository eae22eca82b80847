package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/service"
	"github.com/prithvinet/backend/internal/session"
)

const sessionLocal = "session"

// RequireSession resolves the bearer token and stores the session in Locals
func RequireSession(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing bearer token")
		}

		sess, err := auth.Authenticate(c.UserContext(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, session.ErrExpired):
				return fiber.NewError(fiber.StatusUnauthorized, "Session expired")
			case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrInvalidToken):
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid or revoked session")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve session")
			}
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// RequireCapability rejects sessions whose role lacks the capability.
// Must run after RequireSession.
func RequireCapability(capability domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Login required")
		}
		if !sess.Can(capability) {
			return fiber.NewError(fiber.StatusForbidden, "Role "+string(sess.User.Role)+" cannot "+string(capability))
		}
		return c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession
func SessionFrom(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(sessionLocal).(session.Session)
	return sess, ok
}

// Metrics records request counts and latency per route template
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		m.ObserveRequest(c.Route().Path, c.Method(), status, time.Since(start))
		return err
	}
}
