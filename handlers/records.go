package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"suredoor/app"
	"suredoor/middleware"
	"suredoor/models"
	"suredoor/services"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"stats": a.Dashboard.Stats(time.Now())})
	}
}

// ==================== DONATIONS ====================

func ListDonations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.DonationQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		list, err := a.Donations.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch donations", err)
		}
		return success(c, fiber.Map{"donations": list.Donations, "total_amount": list.TotalAmount})
	}
}

func GetDonationStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Donations.Stats(time.Now())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to compute donation stats", err)
		}
		return success(c, fiber.Map{"stats": stats})
	}
}

// ExportDonations streams the filtered donations as a CSV attachment
func ExportDonations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.DonationQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}

		c.Attachment(fmt.Sprintf("donations-%s.csv", time.Now().Format("2006-01-02")))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		if err := a.Donations.ExportCSV(c.Response().BodyWriter(), q); err != nil {
			c.Response().ResetBody()
			c.Response().Header.Del(fiber.HeaderContentDisposition)
			return serverErrorWithDetails(c, "Failed to export donations", err)
		}
		return nil
	}
}

// ==================== MESSAGES ====================

func ListMessages(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.MessageQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		messages, err := a.Messages.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch messages", err)
		}
		unread, err := a.Messages.UnreadCount()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to count unread messages", err)
		}
		return success(c, fiber.Map{"messages": messages, "unread": unread})
	}
}

func MarkMessageRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Messages.MarkAsRead(c.Params("id")); err != nil {
			return respondError(c, err, "Failed to update message")
		}
		return success(c, fiber.Map{"message": "Marked as read"})
	}
}

func DeleteMessage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Messages.Delete(c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete message")
		}
		return success(c, fiber.Map{"message": "Message deleted"})
	}
}

// ==================== SETTINGS ====================

func GetSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := a.Settings.GetAll()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch settings", err)
		}
		site, err := a.Settings.Site()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch settings", err)
		}
		return success(c, fiber.Map{"settings": settings, "site": site})
	}
}

// UpdateSiteSettings replaces the typed site settings in one transaction
func UpdateSiteSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var site models.SiteSettings
		if ok, err := parseBody(c, a, &site); !ok {
			return err
		}
		if err := a.Settings.UpdateSite(site); err != nil {
			return serverErrorWithDetails(c, "Failed to save settings", err)
		}
		slog.Info("site settings updated", "admin", middleware.GetAdminEmail(c))
		return success(c, fiber.Map{"site": site})
	}
}

// UpdateSetting upserts a single key
func UpdateSetting(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if err := a.Validator.Var("key", key, "settingkey"); err != nil {
			return validationError(c, err)
		}

		var req models.UpdateSettingRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}

		if err := a.Settings.Update(key, req.Value); err != nil {
			if errors.Is(err, services.ErrReservedSetting) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
			}
			return serverErrorWithDetails(c, "Failed to save setting", err)
		}
		return success(c, fiber.Map{"key": key, "value": req.Value})
	}
}
