package handlers

import (
	"errors"
	"log/slog"

	"suredoor/app"
	"suredoor/middleware"
	"suredoor/validator"
	"suredoor/views"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// CSRFContextKey is where the csrf middleware leaves the request token
const CSRFContextKey = "csrf"

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

// validationError turns validator output into a 400 with per-field details
func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verrs,
		})
	}
	return badRequest(c, err.Error())
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return serverError(c, message)
}

// render writes an HTML component as the response body
func render(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status)
	c.Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.UserContext(), c.Response().BodyWriter())
}

// newPage fills the fields every page shares. Settings fall back to defaults
// when they cannot be loaded.
func newPage(c *fiber.Ctx, a *app.App, title string) views.Page {
	site, err := a.Settings.Site()
	if err != nil {
		slog.Error("failed to load site settings", "request_id", middleware.RequestID(c), "error", err)
	}

	csrfToken, _ := c.Locals(CSRFContextKey).(string)

	return views.Page{
		Title:      title,
		Path:       c.Path(),
		Site:       site,
		CSRF:       csrfToken,
		AdminEmail: middleware.GetAdminEmail(c),
	}
}

// logFetchError records a failed read behind a public page; the page still
// renders with the section empty
func logFetchError(c *fiber.Ctx, what string, err error) {
	slog.Error("failed to load page section",
		"request_id", middleware.RequestID(c),
		"path", c.Path(),
		"section", what,
		"error", err,
	)
}

// ErrorPage renders the HTML error page
func ErrorPage(c *fiber.Ctx, a *app.App, status int, message string) error {
	page := newPage(c, a, message)
	page.Data = views.ErrorData{Status: status, Message: message}
	return render(c, status, views.Error(page))
}

// serverErrorLog records a failure that does not change the response
func serverErrorLog(c *fiber.Ctx, message string, err error) {
	slog.Error(message,
		"request_id", middleware.RequestID(c),
		"path", c.Path(),
		"error", err,
	)
}
