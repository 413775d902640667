package handlers

import (
	"errors"

	"suredoor/app"
	"suredoor/models"
	"suredoor/services"
	"suredoor/validator"
	"suredoor/views"

	"github.com/gofiber/fiber/v2"
)

func DonatePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := newPage(c, a, "Donate")
		page.Data = views.DonateData{
			Presets: views.DonationPresets,
			Form:    models.DonationRequest{DonationType: models.DonationOneTime},
			Done:    c.Query("thanks") != "",
		}
		return render(c, fiber.StatusOK, views.Donate(page))
	}
}

// SubmitDonation records a donation pledge from the public form
func SubmitDonation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.DonationRequest
		if err := c.BodyParser(&req); err != nil {
			return ErrorPage(c, a, fiber.StatusBadRequest, "Invalid form submission")
		}

		fieldErrs := map[string]string{}
		if err := a.Validator.Validate(req); err != nil {
			fieldErrs = formErrors(err)
		}

		if len(fieldErrs) == 0 {
			_, err := a.Donations.Create(req)
			switch {
			case err == nil:
				return c.Redirect("/donate?thanks=1", fiber.StatusSeeOther)
			case errors.Is(err, services.ErrInvalidAmount):
				fieldErrs["amount"] = "Please choose or enter an amount greater than zero"
			default:
				return err
			}
		}

		page := newPage(c, a, "Donate")
		page.Error = "Please correct the highlighted fields."
		page.Errors = fieldErrs
		page.Data = views.DonateData{Presets: views.DonationPresets, Form: req}
		return render(c, fiber.StatusBadRequest, views.Donate(page))
	}
}

func ContactPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := newPage(c, a, "Contact Us")
		page.Data = views.ContactData{Done: c.Query("sent") != ""}
		return render(c, fiber.StatusOK, views.Contact(page))
	}
}

// SubmitContact stores a message from the public contact form
func SubmitContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return ErrorPage(c, a, fiber.StatusBadRequest, "Invalid form submission")
		}

		if err := a.Validator.Validate(req); err != nil {
			page := newPage(c, a, "Contact Us")
			page.Error = "Please correct the highlighted fields."
			page.Errors = formErrors(err)
			page.Data = views.ContactData{Form: req}
			return render(c, fiber.StatusBadRequest, views.Contact(page))
		}

		if _, err := a.Messages.Create(req); err != nil {
			return err
		}
		return c.Redirect("/contact?sent=1", fiber.StatusSeeOther)
	}
}

func formErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Fields()
	}
	return map[string]string{"form": err.Error()}
}
