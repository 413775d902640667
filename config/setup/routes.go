package setup

import (
	"net/http"
	"time"

	"suredoor/app"
	"suredoor/config"
	"suredoor/handlers"
	"suredoor/middleware"
	"suredoor/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, cfg *config.Config) {
	fiberApp.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(views.Static()),
		MaxAge: int((24 * time.Hour).Seconds()),
	}))
	if cfg.StorageDriver == config.StorageLocal {
		fiberApp.Static("/uploads", cfg.UploadDir, fiber.Static{
			MaxAge: int((7 * 24 * time.Hour).Seconds()),
		})
	}

	fiberApp.Get("/health", handlers.Health(application))

	// Public pages
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/about", handlers.AboutPage(application))
	fiberApp.Get("/programs", handlers.ProgramsPage(application))
	fiberApp.Get("/programs/:slug", handlers.ProgramPage(application))
	fiberApp.Get("/blog", handlers.BlogPage(application))
	fiberApp.Get("/blog/:slug", handlers.PostPage(application))
	fiberApp.Get("/gallery", handlers.GalleryPage(application))
	fiberApp.Get("/donate", handlers.DonatePage(application))
	fiberApp.Post("/donate", handlers.SubmitDonation(application))
	fiberApp.Get("/contact", handlers.ContactPage(application))
	fiberApp.Post("/contact", handlers.SubmitContact(application))

	// Auth
	fiberApp.Get("/admin/login", handlers.LoginPage(application))
	fiberApp.Post("/admin/login", LoginLimiter(), handlers.Login(application))
	fiberApp.Post("/admin/logout", handlers.Logout(application))
	fiberApp.Get("/api/auth/me", handlers.Me(application))

	adminRequired := middleware.AdminRequired(application.SessionStore)
	fiberApp.Get("/admin", adminRequired, handlers.DashboardPage(application))

	api := fiberApp.Group("/api/admin", adminRequired)

	api.Get("/dashboard", handlers.GetDashboardStats(application))

	api.Get("/blog", handlers.ListBlogPosts(application))
	api.Post("/blog", handlers.CreateBlogPost(application))
	api.Get("/blog/:id", handlers.GetBlogPost(application))
	api.Put("/blog/:id", handlers.UpdateBlogPost(application))
	api.Delete("/blog/:id", handlers.DeleteBlogPost(application))

	api.Get("/programs", handlers.ListPrograms(application))
	api.Post("/programs", handlers.CreateProgram(application))
	api.Get("/programs/:id", handlers.GetProgram(application))
	api.Put("/programs/:id", handlers.UpdateProgram(application))
	api.Delete("/programs/:id", handlers.DeleteProgram(application))

	api.Get("/events", handlers.ListEvents(application))
	api.Post("/events", handlers.CreateEvent(application))
	api.Get("/events/:id", handlers.GetEvent(application))
	api.Put("/events/:id", handlers.UpdateEvent(application))
	api.Delete("/events/:id", handlers.DeleteEvent(application))

	api.Get("/team", handlers.ListTeamMembers(application))
	api.Post("/team", handlers.CreateTeamMember(application))
	api.Put("/team/:id", handlers.UpdateTeamMember(application))
	api.Delete("/team/:id", handlers.DeleteTeamMember(application))

	api.Get("/gallery", handlers.ListGalleryImages(application))
	api.Post("/gallery", handlers.CreateGalleryImage(application))
	api.Delete("/gallery/:id", handlers.DeleteGalleryImage(application))

	api.Get("/donations", handlers.ListDonations(application))
	api.Get("/donations/stats", handlers.GetDonationStats(application))
	api.Get("/donations/export", handlers.ExportDonations(application))

	api.Get("/messages", handlers.ListMessages(application))
	api.Put("/messages/:id/read", handlers.MarkMessageRead(application))
	api.Delete("/messages/:id", handlers.DeleteMessage(application))

	api.Get("/settings", handlers.GetSettings(application))
	api.Put("/settings", handlers.UpdateSiteSettings(application))
	api.Put("/settings/:key", handlers.UpdateSetting(application))

	api.Put("/password", handlers.ChangePassword(application))
	api.Post("/uploads", handlers.UploadImage(application))

	fiberApp.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})
}
