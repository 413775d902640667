package app

import (
	"log/slog"

	"suredoor/database"
	"suredoor/janitor"
	"suredoor/services"
	"suredoor/session"
	"suredoor/slider"
	"suredoor/storage"
	"suredoor/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SessionStore *session.Store
	Storage      storage.Provider
	Janitor      *janitor.Worker
	Slider       *slider.Slider
	Validator    *validator.Validator
	Logger       *slog.Logger

	Auth      *services.AuthService
	Blog      *services.BlogService
	Programs  *services.ProgramService
	Events    *services.EventService
	Team      *services.TeamService
	Gallery   *services.GalleryService
	Donations *services.DonationService
	Messages  *services.MessageService
	Settings  *services.SettingsService
	Dashboard *services.DashboardService
	Uploads   *services.UploadService
}

type Options struct {
	SessionStore   *session.Store
	Storage        storage.Provider
	Janitor        *janitor.Worker
	Slider         *slider.Slider
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// New wires every service on top of the repository
func New(repo *database.Repository, opts Options) *App {
	uploads := services.NewUploadService(opts.Storage, repo, opts.Janitor, opts.MaxUploadBytes)

	return &App{
		Repo:         repo,
		SessionStore: opts.SessionStore,
		Storage:      opts.Storage,
		Janitor:      opts.Janitor,
		Slider:       opts.Slider,
		Validator:    validator.New(),
		Logger:       opts.Logger,

		Auth:      services.NewAuthService(repo, opts.SessionStore),
		Blog:      services.NewBlogService(repo, uploads),
		Programs:  services.NewProgramService(repo, uploads),
		Events:    services.NewEventService(repo, uploads),
		Team:      services.NewTeamService(repo, uploads),
		Gallery:   services.NewGalleryService(repo, uploads),
		Donations: services.NewDonationService(repo),
		Messages:  services.NewMessageService(repo),
		Settings:  services.NewSettingsService(repo),
		Dashboard: services.NewDashboardService(repo),
		Uploads:   uploads,
	}
}
