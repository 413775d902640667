package handlers

import (
	"errors"
	"time"

	"suredoor/app"
	"suredoor/models"
	"suredoor/services"
	"suredoor/slider"
	"suredoor/views"

	"github.com/gofiber/fiber/v2"
)

const (
	homeProgramCount = 3
	homePostCount    = 3
	homeEventCount   = 3
	relatedPostCount = 3
)

func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := views.HomeData{IntervalMs: slider.DefaultInterval.Milliseconds()}
		if a.Slider != nil {
			data.Slides = a.Slider.Slides()
			data.Current = a.Slider.Index()
		} else {
			data.Slides = slider.DefaultSlides
		}

		programs, err := a.Programs.ListActive()
		if err != nil {
			logFetchError(c, "programs", err)
		}
		if len(programs) > homeProgramCount {
			programs = programs[:homeProgramCount]
		}
		data.Programs = programs

		if data.Posts, err = a.Blog.Recent(homePostCount); err != nil {
			logFetchError(c, "posts", err)
		}
		if data.Events, err = a.Events.Upcoming(time.Now(), homeEventCount); err != nil {
			logFetchError(c, "events", err)
		}

		page := newPage(c, a, "")
		page.Data = data
		return render(c, fiber.StatusOK, views.Home(page))
	}
}

func AboutPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		team, err := a.Team.ListActive()
		if err != nil {
			logFetchError(c, "team", err)
		}

		page := newPage(c, a, "About Us")
		page.Data = views.AboutData{Team: team, Departments: views.Departments}
		return render(c, fiber.StatusOK, views.About(page))
	}
}

func ProgramsPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		programs, err := a.Programs.ListActive()
		if err != nil {
			logFetchError(c, "programs", err)
		}

		page := newPage(c, a, "Our Programs")
		page.Data = views.ProgramsData{Departments: views.Departments, Programs: programs}
		return render(c, fiber.StatusOK, views.Programs(page))
	}
}

func ProgramPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		program, err := a.Programs.GetActiveBySlug(c.Params("slug"))
		if errors.Is(err, services.ErrProgramNotFound) {
			return ErrorPage(c, a, fiber.StatusNotFound, "Program not found")
		}
		if err != nil {
			return err
		}

		page := newPage(c, a, program.Title)
		page.Description = program.Description
		page.Data = views.ProgramData{Program: *program, Department: departmentFor(program.Department)}
		return render(c, fiber.StatusOK, views.Program(page))
	}
}

func departmentFor(key string) views.Department {
	for _, d := range views.Departments {
		if d.Key == key {
			return d
		}
	}
	return views.Department{Key: key, Title: views.DepartmentLabel(key)}
}

func BlogPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")

		posts, err := a.Blog.ListPublished(category)
		if err != nil {
			logFetchError(c, "posts", err)
		}
		categories, err := a.Blog.Categories()
		if err != nil {
			logFetchError(c, "categories", err)
		}

		page := newPage(c, a, "Blog")
		page.Data = views.BlogData{Posts: posts, Categories: categories, Category: category}
		return render(c, fiber.StatusOK, views.Blog(page))
	}
}

func PostPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Blog.GetPublishedBySlug(c.Params("slug"))
		if errors.Is(err, services.ErrPostNotFound) {
			return ErrorPage(c, a, fiber.StatusNotFound, "Post not found")
		}
		if err != nil {
			return err
		}

		recent, err := a.Blog.Recent(relatedPostCount + 1)
		if err != nil {
			logFetchError(c, "recent posts", err)
		}
		related := make([]models.BlogPost, 0, relatedPostCount)
		for _, p := range recent {
			if p.ID != post.ID && len(related) < relatedPostCount {
				related = append(related, p)
			}
		}

		page := newPage(c, a, post.Title)
		page.Description = post.Excerpt
		page.Data = views.PostData{Post: *post, Recent: related}
		return render(c, fiber.StatusOK, views.Post(page))
	}
}

func GalleryPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")

		images, err := a.Gallery.List(services.GalleryQuery{Category: category})
		if err != nil {
			logFetchError(c, "gallery", err)
		}
		categories, err := a.Gallery.Categories()
		if err != nil {
			logFetchError(c, "categories", err)
		}

		page := newPage(c, a, "Gallery")
		page.Data = views.GalleryData{Images: images, Categories: categories, Category: category}
		return render(c, fiber.StatusOK, views.Gallery(page))
	}
}

// Health reports liveness along with a database ping
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Repo.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "storage": a.Storage.Name()})
	}
}
