package handlers

import (
	"time"

	"suredoor/app"
	"suredoor/models"
	"suredoor/services"
	"suredoor/views"

	"github.com/gofiber/fiber/v2"
)

// DashboardPage renders the admin screen for the tab named in ?tab=
func DashboardPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tab := c.Query("tab", views.TabOverview)
		if !views.ValidTab(tab) {
			tab = views.TabOverview
		}

		data := views.DashboardData{
			Tab:    tab,
			Tabs:   views.Tabs,
			Search: c.Query("search"),
			Stats:  a.Dashboard.Stats(time.Now()),
		}
		editID := c.Query("edit")

		var err error
		switch tab {
		case views.TabBlog:
			data.Filter = c.Query("status")
			data.Posts, err = a.Blog.List(services.BlogQuery{Search: data.Search, Status: data.Filter})
			if err == nil {
				data.Categories, err = a.Blog.Categories()
			}
			if err == nil && editID != "" {
				var post *models.BlogPost
				if post, err = a.Blog.GetByID(editID); err == nil {
					data.EditPost = *post
				}
			}

		case views.TabGallery:
			data.Filter = c.Query("category")
			data.Gallery, err = a.Gallery.List(services.GalleryQuery{Search: data.Search, Category: data.Filter})
			if err == nil {
				data.Categories, err = a.Gallery.Categories()
			}

		case views.TabTeam:
			data.Team, err = a.Team.List(services.TeamQuery{Search: data.Search})
			data.EditMember = models.TeamMember{Active: true, DisplayOrder: len(data.Team)}
			if err == nil && editID != "" {
				var member *models.TeamMember
				if member, err = a.Team.GetByID(editID); err == nil {
					data.EditMember = *member
				}
			}

		case views.TabPrograms:
			data.Filter = c.Query("department")
			data.Departments = views.Departments
			data.Programs, err = a.Programs.List(services.ProgramQuery{Search: data.Search, Department: data.Filter})
			data.EditProgram = models.Program{Active: true, Department: models.DepartmentPublicEnlightenment}
			if err == nil && editID != "" {
				var program *models.Program
				if program, err = a.Programs.GetByID(editID); err == nil {
					data.EditProgram = *program
				}
			}

		case views.TabEvents:
			data.Events, err = a.Events.List()
			if err == nil && editID != "" {
				var event *models.Event
				if event, err = a.Events.GetByID(editID); err == nil {
					data.EditEvent = *event
				}
			}

		case views.TabDonations:
			data.Filter = c.Query("type")
			var list *services.DonationList
			if list, err = a.Donations.List(services.DonationQuery{Search: data.Search, Type: data.Filter}); err == nil {
				data.Donations = *list
				var stats *models.DonationStats
				if stats, err = a.Donations.Stats(time.Now()); err == nil {
					data.DonationStats = *stats
				}
			}

		case views.TabMessages:
			data.Filter = c.Query("status")
			data.Messages, err = a.Messages.List(services.MessageQuery{Search: data.Search, Status: data.Filter})

		case views.TabSettings:
			data.Settings, err = a.Settings.Site()
		}

		page := newPage(c, a, "Admin Dashboard")
		if err != nil {
			logFetchError(c, tab, err)
			page.Error = "Some data could not be loaded."
		}
		page.Data = data
		return render(c, fiber.StatusOK, views.Dashboard(page))
	}
}
