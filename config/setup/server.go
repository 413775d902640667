package setup

import (
	"errors"
	"log/slog"
	"time"

	"suredoor/app"
	"suredoor/config"
	"suredoor/handlers"
	"suredoor/middleware"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp creates and configures a new Fiber application
func NewFiberApp(cfg *config.Config, application *app.App, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 30,
		WriteTimeout:          time.Second * 30,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          CustomErrorHandler(application, logger),
		ReadBufferSize:        8192,
		// room for the largest allowed image plus the multipart envelope
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
}

// CustomErrorHandler answers API paths with JSON and everything else with the
// HTML error page
func CustomErrorHandler(application *app.App, logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		requestID := middleware.RequestID(c)
		level := slog.LevelError
		if code < fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.UserContext(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		if middleware.IsAPIRequest(c) || application == nil {
			return c.Status(code).JSON(fiber.Map{
				"error":      message,
				"request_id": requestID,
			})
		}
		return handlers.ErrorPage(c, application, code, message)
	}
}
