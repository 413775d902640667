package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"suredoor/app"
	"suredoor/config"
	"suredoor/middleware"
	"suredoor/models"
	"suredoor/services"
	"suredoor/session"
	"suredoor/views"

	"github.com/gofiber/fiber/v2"
)

func LoginPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, err := a.Auth.Session(c.Cookies(session.CookieName)); err == nil && sess != nil {
			return c.Redirect(safeNext(c.Query("next")), fiber.StatusSeeOther)
		}

		page := newPage(c, a, "Admin Login")
		page.Data = views.LoginData{Next: safeNext(c.Query("next"))}
		return render(c, fiber.StatusOK, views.Login(page))
	}
}

// Login checks the admin credentials and sets the session cookie
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return ErrorPage(c, a, fiber.StatusBadRequest, "Invalid form submission")
		}
		next := safeNext(c.FormValue("next"))

		sess, err := a.Auth.Login(req.Email, req.Password)
		if err != nil {
			message := "Invalid email or password"
			status := fiber.StatusUnauthorized
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				slog.Warn("admin login failed", "ip", c.IP())
			case errors.Is(err, services.ErrAdminNotConfigured):
				message = "Admin access has not been configured"
				status = fiber.StatusServiceUnavailable
			default:
				return err
			}

			page := newPage(c, a, "Admin Login")
			page.Error = message
			page.Data = views.LoginData{Email: req.Email, Next: next}
			return render(c, status, views.Login(page))
		}

		setSessionCookie(c, sess)
		slog.Info("admin logged in", "email", sess.Email)
		return c.Redirect(next, fiber.StatusSeeOther)
	}
}

func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Auth.Logout(c.Cookies(session.CookieName)); err != nil {
			slog.Error("failed to delete session", "error", err)
		}
		c.ClearCookie(session.CookieName)
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// Me reports whether the caller holds an admin session
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := a.Auth.Session(c.Cookies(session.CookieName))
		if errors.Is(err, services.ErrSessionNotFound) {
			return success(c, fiber.Map{"authenticated": false})
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load session", err)
		}
		return success(c, fiber.Map{
			"authenticated": true,
			"email":         sess.Email,
			"expires_at":    sess.ExpiresAt,
		})
	}
}

// ChangePassword replaces the admin password and rotates the caller's session
func ChangePassword(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ChangePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return validationError(c, err)
		}

		sess, err := a.Auth.ChangePassword(middleware.GetAdminEmail(c), req.CurrentPassword, req.NewPassword)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return badRequest(c, "Current password is incorrect")
		case errors.Is(err, services.ErrWeakPassword):
			return badRequest(c, err.Error())
		case err != nil:
			return serverErrorWithDetails(c, "Failed to change password", err)
		}

		setSessionCookie(c, sess)
		slog.Info("admin password changed", "email", sess.Email)
		return success(c, fiber.Map{"message": "Password updated"})
	}
}

func setSessionCookie(c *fiber.Ctx, sess *models.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   config.AppConfig != nil && config.AppConfig.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
	})
}

// safeNext keeps post-login redirects on this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/admin"
	}
	return next
}

