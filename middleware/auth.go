package middleware

import (
	"log/slog"
	"net/url"
	"strings"

	"suredoor/models"
	"suredoor/session"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired rejects requests without a live admin session. API callers get
// a 401, browsers are redirected to the login page.
func AdminRequired(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(session.CookieName)
		if sessionID != "" {
			sess, err := sessionStore.Get(sessionID)
			if err != nil {
				slog.Error("session lookup failed", "error", err)
			}
			if err == nil && sess != nil {
				if err := sessionStore.Touch(sess.ID); err != nil {
					slog.Warn("session touch failed", "error", err)
				}

				c.Locals("adminEmail", sess.Email)
				c.Locals("session", sess)
				return c.Next()
			}
			c.ClearCookie(session.CookieName)
		}

		if IsAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authentication required",
			})
		}

		return c.Redirect("/admin/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
	}
}

// IsAPIRequest reports whether the request targets the JSON API
func IsAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

func GetAdminEmail(c *fiber.Ctx) string {
	email, ok := c.Locals("adminEmail").(string)
	if !ok {
		return ""
	}
	return email
}

func GetSession(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals("session").(*models.Session)
	return sess
}
