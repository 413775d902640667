package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"suredoor/app"
	"suredoor/database"
	"suredoor/handlers"
	"suredoor/janitor"
	"suredoor/models"
	"suredoor/services"
	"suredoor/session"
	"suredoor/slider"
	"suredoor/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail = "admin@example.org"
	testUploadURL  = "http://localhost:3000/uploads"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// setupTestDB creates a temporary database and returns the app with all dependencies
func setupTestDB(t *testing.T) (*app.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "suredoor-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := database.NewRepository(db)
	provider, err := storage.NewLocalProvider(filepath.Join(tmpDir, "uploads"), testUploadURL)
	require.NoError(t, err)

	// the janitor is never started; queued deletions just stay in the table
	application := app.New(repo, app.Options{
		SessionStore:   session.NewStore(repo, time.Hour),
		Storage:        provider,
		Janitor:        janitor.NewWorker(repo, provider),
		Slider:         slider.New(slider.DefaultSlides),
		MaxUploadBytes: 1 << 20,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}
	return application, cleanup
}

// setupTestApp mounts every route under test. Admin routes see a logged-in admin.
func setupTestApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	fiberApp.Get("/health", handlers.Health(a))
	fiberApp.Get("/", handlers.HomePage(a))
	fiberApp.Get("/about", handlers.AboutPage(a))
	fiberApp.Get("/programs", handlers.ProgramsPage(a))
	fiberApp.Get("/programs/:slug", handlers.ProgramPage(a))
	fiberApp.Get("/blog", handlers.BlogPage(a))
	fiberApp.Get("/blog/:slug", handlers.PostPage(a))
	fiberApp.Get("/gallery", handlers.GalleryPage(a))
	fiberApp.Get("/donate", handlers.DonatePage(a))
	fiberApp.Post("/donate", handlers.SubmitDonation(a))
	fiberApp.Get("/contact", handlers.ContactPage(a))
	fiberApp.Post("/contact", handlers.SubmitContact(a))
	fiberApp.Post("/admin/login", handlers.Login(a))
	fiberApp.Post("/admin/logout", handlers.Logout(a))

	api := fiberApp.Group("/api/admin", func(c *fiber.Ctx) error {
		c.Locals("adminEmail", testAdminEmail)
		return c.Next()
	})
	api.Get("/dashboard", handlers.GetDashboardStats(a))
	api.Post("/blog", handlers.CreateBlogPost(a))
	api.Get("/blog", handlers.ListBlogPosts(a))
	api.Get("/blog/:id", handlers.GetBlogPost(a))
	api.Put("/blog/:id", handlers.UpdateBlogPost(a))
	api.Delete("/blog/:id", handlers.DeleteBlogPost(a))
	api.Post("/programs", handlers.CreateProgram(a))
	api.Post("/events", handlers.CreateEvent(a))
	api.Get("/team", handlers.ListTeamMembers(a))
	api.Post("/team", handlers.CreateTeamMember(a))
	api.Put("/team/:id", handlers.UpdateTeamMember(a))
	api.Delete("/team/:id", handlers.DeleteTeamMember(a))
	api.Post("/gallery", handlers.CreateGalleryImage(a))
	api.Get("/gallery", handlers.ListGalleryImages(a))
	api.Get("/donations", handlers.ListDonations(a))
	api.Get("/donations/export", handlers.ExportDonations(a))
	api.Put("/messages/:id/read", handlers.MarkMessageRead(a))
	api.Get("/settings", handlers.GetSettings(a))
	api.Put("/settings", handlers.UpdateSiteSettings(a))
	api.Put("/settings/:key", handlers.UpdateSetting(a))
	api.Post("/uploads", handlers.UploadImage(a))
	api.Put("/password", handlers.ChangePassword(a))

	return fiberApp
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)

	var result map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp, result
}

func postForm(t *testing.T, fiberApp *fiber.App, target string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	return resp
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestPublicPages(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	_, err := application.Blog.Create(models.BlogPostRequest{
		Title: "Skills Fair Recap", Excerpt: "What we learned", Content: "**Great** turnout", Published: true, Category: "news",
	})
	require.NoError(t, err)
	_, err = application.Blog.Create(models.BlogPostRequest{
		Title: "Unfinished Draft", Excerpt: "x", Content: "x",
	})
	require.NoError(t, err)
	_, err = application.Programs.Create(models.ProgramRequest{
		Title: "Vocational Training", Description: "Tailoring and catering", Department: models.DepartmentWomen, Active: true,
	})
	require.NoError(t, err)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: "/", status: fiber.StatusOK, contains: "Skills Fair Recap"},
		{path: "/about", status: fiber.StatusOK},
		{path: "/programs", status: fiber.StatusOK, contains: "Vocational Training"},
		{path: "/programs/vocational-training", status: fiber.StatusOK, contains: "Tailoring and catering"},
		{path: "/programs/unknown", status: fiber.StatusNotFound},
		{path: "/blog", status: fiber.StatusOK, contains: "Skills Fair Recap"},
		{path: "/blog?category=news", status: fiber.StatusOK, contains: "Skills Fair Recap"},
		{path: "/blog/skills-fair-recap", status: fiber.StatusOK, contains: "<strong>Great</strong>"},
		{path: "/blog/unfinished-draft", status: fiber.StatusNotFound},
		{path: "/blog/missing", status: fiber.StatusNotFound},
		{path: "/gallery", status: fiber.StatusOK},
		{path: "/donate", status: fiber.StatusOK},
		{path: "/donate?thanks=1", status: fiber.StatusOK},
		{path: "/contact", status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			if tt.contains != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(body), tt.contains)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()

	resp, body := doJSON(t, setupTestApp(application), http.MethodGet, "/health", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "local", body["storage"])
}

func TestSubmitContact(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name       string
		values     url.Values
		status     int
		location   string
		storedRows int
	}{
		{
			name: "valid message",
			values: url.Values{
				"name": {"Ngozi Okafor"}, "email": {"ngozi@example.org"},
				"subject": {"Volunteering"}, "message": {"I would like to volunteer on weekends."},
			},
			status:     fiber.StatusSeeOther,
			location:   "/contact?sent=1",
			storedRows: 1,
		},
		{
			name:       "invalid email and short message",
			values:     url.Values{"name": {"Ngozi"}, "email": {"not-an-email"}, "subject": {"Hi"}, "message": {"short"}},
			status:     fiber.StatusBadRequest,
			storedRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postForm(t, fiberApp, "/contact", tt.values)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
			messages, err := application.Messages.List(services.MessageQuery{})
			require.NoError(t, err)
			assert.Len(t, messages, tt.storedRows)
		})
	}
}

func TestSubmitDonation(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		status   int
		amount   int64
		contains string
	}{
		{
			name:   "preset amount",
			values: url.Values{"email": {"ada@example.org"}, "amount": {"5000"}, "donationType": {"one-time"}},
			status: fiber.StatusSeeOther,
			amount: 5000,
		},
		{
			name:   "custom amount",
			values: url.Values{"email": {"ada@example.org"}, "customAmount": {"1234"}, "donationType": {"monthly"}, "anonymous": {"true"}},
			status: fiber.StatusSeeOther,
			amount: 1234,
		},
		{
			name:     "no amount",
			values:   url.Values{"email": {"ada@example.org"}, "donationType": {"one-time"}},
			status:   fiber.StatusBadRequest,
			contains: "greater than zero",
		},
		{
			name:     "bad email",
			values:   url.Values{"email": {"nope"}, "amount": {"5000"}, "donationType": {"one-time"}},
			status:   fiber.StatusBadRequest,
			contains: "valid email",
		},
		{
			name:   "unknown donation type",
			values: url.Values{"email": {"ada@example.org"}, "amount": {"5000"}, "donationType": {"weekly"}},
			status: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application, cleanup := setupTestDB(t)
			defer cleanup()

			resp := postForm(t, setupTestApp(application), "/donate", tt.values)

			assert.Equal(t, tt.status, resp.StatusCode)
			list, err := application.Donations.List(services.DonationQuery{})
			require.NoError(t, err)
			if tt.status == fiber.StatusSeeOther {
				assert.Equal(t, "/donate?thanks=1", resp.Header.Get("Location"))
				require.Len(t, list.Donations, 1)
				assert.Equal(t, tt.amount, list.Donations[0].Amount)
			} else {
				assert.Empty(t, list.Donations)
			}
			if tt.contains != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(body), tt.contains)
			}
		})
	}
}

func TestBlogAPI(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	post := map[string]any{
		"title": "Back to School Drive", "excerpt": "Books for 200 pupils", "content": "Thank you all", "published": true,
	}

	resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/admin/blog", post)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := body["post"].(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, "back-to-school-drive", created["slug"])

	// same title, derived slug gets a suffix
	resp, body = doJSON(t, fiberApp, http.MethodPost, "/api/admin/blog", post)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "back-to-school-drive-2", body["post"].(map[string]any)["slug"])

	t.Run("explicit slug collision", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/admin/blog", map[string]any{
			"title": "Another", "slug": "back-to-school-drive", "excerpt": "x", "content": "x",
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, services.ErrSlugTaken.Error(), body["error"])
	})

	t.Run("validation", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/admin/blog", map[string]any{
			"title": "Hi", "slug": "Not A Slug",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["error"])
		fields := map[string]bool{}
		for _, d := range body["details"].([]any) {
			fields[d.(map[string]any)["field"].(string)] = true
		}
		assert.True(t, fields["title"])
		assert.True(t, fields["slug"])
		assert.True(t, fields["excerpt"])
		assert.True(t, fields["content"])
	})

	t.Run("update", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPut, "/api/admin/blog/"+id, map[string]any{
			"title": "Back to School Drive 2024", "slug": "back-to-school-drive", "excerpt": "Books", "content": "Done", "published": false,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		updated := body["post"].(map[string]any)
		assert.Equal(t, "back-to-school-drive", updated["slug"])
		assert.Equal(t, false, updated["published"])
	})

	t.Run("list filters drafts", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/blog?status=draft", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Len(t, body["posts"], 1)
	})

	t.Run("delete then not found", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodDelete, "/api/admin/blog/"+id, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, fiberApp, http.MethodGet, "/api/admin/blog/"+id, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		resp, _ = doJSON(t, fiberApp, http.MethodDelete, "/api/admin/blog/"+id, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateProgramAndEventValidation(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name   string
		target string
		body   any
		status int
	}{
		{
			name:   "program",
			target: "/api/admin/programs",
			body:   map[string]any{"title": "Youth Mentorship", "description": "Pairing", "department": "youth", "active": true},
			status: fiber.StatusCreated,
		},
		{
			name:   "program with unknown department",
			target: "/api/admin/programs",
			body:   map[string]any{"title": "Youth Mentorship", "description": "Pairing", "department": "sports"},
			status: fiber.StatusBadRequest,
		},
		{
			name:   "event",
			target: "/api/admin/events",
			body:   map[string]any{"title": "Town Hall", "date": "2030-05-01", "location": "Ikeja"},
			status: fiber.StatusCreated,
		},
		{
			name:   "event with bad date",
			target: "/api/admin/events",
			body:   map[string]any{"title": "Town Hall", "date": "01/05/2030"},
			status: fiber.StatusBadRequest,
		},
		{
			name:   "malformed json",
			target: "/api/admin/events",
			body:   `{"title": "Town Hall",`,
			status: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, fiberApp, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestSettingsAPI(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)
	require.NoError(t, application.Auth.WithCost(4).SetCredentials(testAdminEmail, "s3cret-pass"))

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{name: "plain key", key: "donation_note", status: fiber.StatusOK},
		{name: "reserved hash", key: models.SettingAdminPasswordHash, status: fiber.StatusForbidden},
		{name: "reserved email", key: models.SettingAdminEmail, status: fiber.StatusForbidden},
		{name: "malformed key", key: "Bad-Key", status: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/admin/settings/"+tt.key, map[string]any{"value": "changed"})
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	t.Run("site settings round trip", func(t *testing.T) {
		site := models.DefaultSiteSettings()
		site.ContactPhone = "+234 801 234 5678"

		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/admin/settings", site)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/settings", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "+234 801 234 5678", body["site"].(map[string]any)["contactPhone"])
		for _, s := range body["settings"].([]any) {
			key := s.(map[string]any)["key"].(string)
			assert.False(t, services.IsReservedSetting(key), "reserved key %q leaked", key)
		}
	})

	t.Run("invalid site settings", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPut, "/api/admin/settings", map[string]any{"siteName": "", "contactEmail": "nope"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["error"])
	})
}

func TestUploadImage(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name      string
		bucket    string
		filename  string
		content   []byte
		status    int
		urlPrefix string
	}{
		{name: "png into blog", bucket: storage.BucketBlog, filename: "cover.png", content: pngBytes, status: fiber.StatusCreated, urlPrefix: testUploadURL + "/blog/"},
		{name: "default bucket", filename: "cover.png", content: pngBytes, status: fiber.StatusCreated, urlPrefix: testUploadURL + "/gallery/"},
		{name: "text file", bucket: storage.BucketBlog, filename: "cover.png", content: []byte("hello"), status: fiber.StatusBadRequest},
		{name: "unknown bucket", bucket: "private", filename: "cover.png", content: pngBytes, status: fiber.StatusBadRequest},
		{name: "missing file", bucket: storage.BucketBlog, status: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]string{}
			if tt.bucket != "" {
				fields["bucket"] = tt.bucket
			}
			body, contentType := multipartBody(t, fields, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := fiberApp.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.urlPrefix != "" {
				var result map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
				assert.True(t, strings.HasPrefix(result["url"], tt.urlPrefix), result["url"])
			}
		})
	}
}

func TestGalleryAPI(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	body, contentType := multipartBody(t, map[string]string{"title": "Outreach day", "category": "outreach"}, "day.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, fiberApp, http.MethodPost, "/api/admin/gallery", map[string]any{
		"title": "Linked", "category": "events", "image_url": "https://images.example.org/a.jpg",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := doJSON(t, fiberApp, http.MethodGet, "/api/admin/gallery?category=outreach", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	images := result["images"].([]any)
	require.Len(t, images, 1)
	assert.True(t, strings.HasPrefix(images[0].(map[string]any)["image_url"].(string), testUploadURL+"/gallery/"))
	assert.ElementsMatch(t, []any{"outreach", "events"}, result["categories"])
}

func TestDonationsAPI(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	for _, req := range []models.DonationRequest{
		{FirstName: "Ada", LastName: "Obi", Email: "ada@example.org", Amount: 5000, DonationType: models.DonationOneTime},
		{FirstName: "Tunde", Email: "tunde@example.org", Amount: 10000, DonationType: models.DonationMonthly, Anonymous: true},
	} {
		_, err := application.Donations.Create(req)
		require.NoError(t, err)
	}

	resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/donations?type=monthly", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["donations"], 1)
	assert.Equal(t, float64(10000), body["total_amount"])

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/admin/donations/export", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	csvBody, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(csvBody), "Anonymous")
	assert.Contains(t, string(csvBody), "Ada Obi")
	assert.NotContains(t, string(csvBody), "Tunde,")
}

func TestMarkMessageRead(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	msg, err := application.Messages.Create(models.ContactRequest{
		Name: "Emeka", Email: "emeka@example.org", Subject: "Partnership", Message: "Let us work together on this.",
	})
	require.NoError(t, err)

	resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/admin/messages/"+msg.ID+"/read", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, fiberApp, http.MethodPut, "/api/admin/messages/missing/read", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["messages"])
	assert.Equal(t, float64(0), stats["unread_messages"])
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestTeamAPI(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/admin/team", map[string]any{
		"name": "Ngozi Okafor", "role": "Director", "bio": "Runs the women's programs", "display_order": 1, "active": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := body["member"].(map[string]any)["id"].(string)

	t.Run("validation", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/admin/team", map[string]any{"name": "N", "role": ""})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["error"])
	})

	t.Run("update", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPut, "/api/admin/team/"+id, map[string]any{
			"name": "Ngozi Okafor", "role": "Executive Director", "display_order": 2, "active": false,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		member := body["member"].(map[string]any)
		assert.Equal(t, "Executive Director", member["role"])
		assert.Equal(t, false, member["active"])
	})

	t.Run("list includes inactive members", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/team?search=ngozi", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		members := body["members"].([]any)
		require.Len(t, members, 1)
		assert.Equal(t, id, members[0].(map[string]any)["id"])
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/admin/team/missing", map[string]any{"name": "Someone", "role": "Volunteer"})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		resp, _ = doJSON(t, fiberApp, http.MethodDelete, "/api/admin/team/missing", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodDelete, "/api/admin/team/"+id, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		_, body := doJSON(t, fiberApp, http.MethodGet, "/api/admin/team", nil)
		assert.Empty(t, body["members"])
	})
}

func TestChangePassword(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)
	require.NoError(t, application.Auth.WithCost(4).SetCredentials(testAdminEmail, "s3cret-pass"))

	old, err := application.SessionStore.Create(testAdminEmail)
	require.NoError(t, err)

	tests := []struct {
		name    string
		current string
		next    string
		status  int
		errMsg  string
	}{
		{name: "wrong current password", current: "guess-again", next: "brand-new-pass", status: fiber.StatusBadRequest, errMsg: "Current password is incorrect"},
		{name: "new password too short", current: "s3cret-pass", next: "short", status: fiber.StatusBadRequest, errMsg: "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, fiberApp, http.MethodPut, "/api/admin/password", map[string]any{
				"current_password": tt.current, "new_password": tt.next,
			})
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.errMsg, body["error"])
			assert.Nil(t, sessionCookie(resp))
		})
	}

	t.Run("success rotates the session", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/admin/password", map[string]any{
			"current_password": "s3cret-pass", "new_password": "brand-new-pass",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.NotEqual(t, old.ID, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		gone, err := application.SessionStore.Get(old.ID)
		require.NoError(t, err)
		assert.Nil(t, gone, "sessions opened before the change are ended")

		current, err := application.SessionStore.Get(cookie.Value)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, testAdminEmail, current.Email)

		_, err = application.Auth.Login(testAdminEmail, "brand-new-pass")
		assert.NoError(t, err)
	})
}

func TestLoginAndLogout(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)
	require.NoError(t, application.Auth.WithCost(4).SetCredentials(testAdminEmail, "s3cret-pass"))

	t.Run("email is matched ignoring case and spaces", func(t *testing.T) {
		resp := postForm(t, fiberApp, "/admin/login", url.Values{
			"email": {"  Admin@Example.ORG "}, "password": {"s3cret-pass"}, "next": {"/admin?tab=blog"},
		})
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin?tab=blog", resp.Header.Get("Location"))
		require.NotNil(t, sessionCookie(resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postForm(t, fiberApp, "/admin/login", url.Values{"email": {testAdminEmail}, "password": {"S3CRET-PASS"}})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("logout ends the session", func(t *testing.T) {
		sess, err := application.SessionStore.Create(testAdminEmail)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
		resp, err := fiberApp.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		cleared := sessionCookie(resp)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)

		got, err := application.SessionStore.Get(sess.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
