package handlers

import (
	"errors"

	"suredoor/app"
	"suredoor/models"
	"suredoor/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to status codes; anything unknown is a 500
func respondError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrProgramNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrTeamMemberNotFound),
		errors.Is(err, services.ErrImageNotFound),
		errors.Is(err, services.ErrMessageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidUpload),
		errors.Is(err, services.ErrUnknownBucket),
		errors.Is(err, services.ErrReservedSetting):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	}
	return serverErrorWithDetails(c, message, err)
}

// parseBody parses and validates req. When ok is false the error response
// has already been written and err is what the handler should return.
func parseBody(c *fiber.Ctx, a *app.App, req any) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, badRequest(c, "Invalid request body")
	}
	if err := a.Validator.Validate(req); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}

// ==================== BLOG ====================

func ListBlogPosts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.BlogQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		posts, err := a.Blog.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch posts", err)
		}
		return success(c, fiber.Map{"posts": posts})
	}
}

func GetBlogPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Blog.GetByID(c.Params("id"))
		if err != nil {
			return respondError(c, err, "Failed to fetch post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

func CreateBlogPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BlogPostRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		post, err := a.Blog.Create(req)
		if err != nil {
			return respondError(c, err, "Failed to create post")
		}
		return created(c, fiber.Map{"post": post})
	}
}

func UpdateBlogPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BlogPostRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		post, err := a.Blog.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return respondError(c, err, "Failed to update post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

func DeleteBlogPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Blog.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete post")
		}
		return success(c, fiber.Map{"message": "Post deleted"})
	}
}

// ==================== PROGRAMS ====================

func ListPrograms(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.ProgramQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		programs, err := a.Programs.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch programs", err)
		}
		return success(c, fiber.Map{"programs": programs})
	}
}

func GetProgram(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		program, err := a.Programs.GetByID(c.Params("id"))
		if err != nil {
			return respondError(c, err, "Failed to fetch program")
		}
		return success(c, fiber.Map{"program": program})
	}
}

func CreateProgram(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ProgramRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		program, err := a.Programs.Create(req)
		if err != nil {
			return respondError(c, err, "Failed to create program")
		}
		return created(c, fiber.Map{"program": program})
	}
}

func UpdateProgram(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ProgramRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		program, err := a.Programs.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return respondError(c, err, "Failed to update program")
		}
		return success(c, fiber.Map{"program": program})
	}
}

func DeleteProgram(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Programs.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete program")
		}
		return success(c, fiber.Map{"message": "Program deleted"})
	}
}

// ==================== EVENTS ====================

func ListEvents(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := a.Events.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch events", err)
		}
		return success(c, fiber.Map{"events": events})
	}
}

func GetEvent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := a.Events.GetByID(c.Params("id"))
		if err != nil {
			return respondError(c, err, "Failed to fetch event")
		}
		return success(c, fiber.Map{"event": event})
	}
}

func CreateEvent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EventRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		event, err := a.Events.Create(req)
		if err != nil {
			return respondError(c, err, "Failed to create event")
		}
		return created(c, fiber.Map{"event": event})
	}
}

func UpdateEvent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EventRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		event, err := a.Events.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return respondError(c, err, "Failed to update event")
		}
		return success(c, fiber.Map{"event": event})
	}
}

func DeleteEvent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Events.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete event")
		}
		return success(c, fiber.Map{"message": "Event deleted"})
	}
}

// ==================== TEAM ====================

func ListTeamMembers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.TeamQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		members, err := a.Team.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch team members", err)
		}
		return success(c, fiber.Map{"members": members})
	}
}

func CreateTeamMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.TeamMemberRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		member, err := a.Team.Create(req)
		if err != nil {
			return respondError(c, err, "Failed to create team member")
		}
		return created(c, fiber.Map{"member": member})
	}
}

func UpdateTeamMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.TeamMemberRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}
		member, err := a.Team.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return respondError(c, err, "Failed to update team member")
		}
		return success(c, fiber.Map{"member": member})
	}
}

func DeleteTeamMember(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Team.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete team member")
		}
		return success(c, fiber.Map{"message": "Team member deleted"})
	}
}
