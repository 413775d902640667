package setup

import (
	"context"
	"fmt"
	"log/slog"

	"suredoor/app"
	"suredoor/config"
	"suredoor/database"
	"suredoor/janitor"
	"suredoor/session"
	"suredoor/slider"
	"suredoor/storage"
	"suredoor/storage/drive"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// NewStorage builds the object storage provider selected by STORAGE_DRIVER
func NewStorage(ctx context.Context, cfg *config.Config) (storage.Provider, error) {
	switch cfg.StorageDriver {
	case config.StorageLocal:
		return storage.NewLocalProvider(cfg.UploadDir, cfg.BaseURL+"/uploads")
	case config.StorageS3:
		return storage.NewS3Provider(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case config.StorageDrive:
		client, err := drive.NewClient(ctx, cfg.DriveCredentialsFile)
		if err != nil {
			return nil, err
		}
		return drive.NewProvider(client, cfg.DriveFolderID), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// InitApp initializes the application with all dependencies and starts the
// background routines. They stop when ctx is cancelled or Shutdown runs.
func InitApp(ctx context.Context, db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	provider, err := NewStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", cfg.StorageDriver, err)
	}
	logger.Info("storage provider configured", "driver", provider.Name())

	sessionStore := session.NewStore(repo, cfg.SessionTTL)
	sessionStore.StartCleanupRoutine(ctx)
	logger.Info("session cleanup routine started")

	janitorWorker := janitor.NewWorker(repo, provider)
	janitorWorker.Start()
	logger.Info("storage janitor started")

	heroSlider := slider.New(slider.DefaultSlides)
	go heroSlider.Run(ctx, slider.DefaultInterval)

	application := app.New(repo, app.Options{
		SessionStore:   sessionStore,
		Storage:        provider,
		Janitor:        janitorWorker,
		Slider:         heroSlider,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
	})

	if err := application.Auth.Bootstrap(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		janitorWorker.Stop()
		return nil, fmt.Errorf("failed to bootstrap admin credentials: %w", err)
	}

	logger.Info("application initialized with dependency injection")
	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.Janitor != nil {
		application.Janitor.Stop()
		logger.Info("storage janitor stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
