package setup

import (
	"log/slog"
	"strings"
	"time"

	"suredoor/config"
	"suredoor/handlers"
	"suredoor/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// csrfFormField is the hidden input HTML forms carry the token in
const csrfFormField = "_csrf"

// ApplyMiddleware applies all global middleware to the Fiber app
func ApplyMiddleware(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	app.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,X-CSRF-Token",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		compress.New(compress.Config{
			Level: compress.LevelBestSpeed,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/uploads/")
			},
		}),
		limiter.New(limiter.Config{
			Max:        300,
			Expiration: time.Minute,
			Next:       isAsset,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTooManyRequests, "Rate limit exceeded")
			},
		}),
		csrf.New(csrf.Config{
			Next:           isAsset,
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieSecure:   cfg.IsProduction(),
			CookieHTTPOnly: true,
			Expiration:     cfg.SessionTTL,
			ContextKey:     handlers.CSRFContextKey,
			Extractor:      csrfFromHeaderOrForm,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return fiber.NewError(fiber.StatusForbidden, "Invalid or missing CSRF token")
			},
		}),
	)
}

// LoginLimiter throttles credential guessing per client IP
func LoginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "login:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many login attempts, try again in a minute")
		},
	})
}

// csrfFromHeaderOrForm accepts the header sent by admin.js or the hidden
// field of a plain HTML form
func csrfFromHeaderOrForm(c *fiber.Ctx) (string, error) {
	if token := c.Get(csrf.HeaderName); token != "" {
		return token, nil
	}
	return csrf.CsrfFromForm(csrfFormField)(c)
}

func isAsset(c *fiber.Ctx) bool {
	path := c.Path()
	return strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/uploads/") || path == "/health"
}
