package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageLocal = "local"
	StorageS3    = "s3"
	StorageDrive = "drive"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DBPath      string
	BaseURL     string
	CORSOrigins string

	AdminEmail    string
	AdminPassword string
	SessionTTL    time.Duration

	StorageDriver  string
	UploadDir      string
	MaxUploadBytes int64

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PublicURL string
	S3AccessKey string
	S3SecretKey string

	DriveCredentialsFile string
	DriveFolderID        string
}

var AppConfig *Config

// Load reads .env (when present) and the environment into AppConfig. Files
// named explicitly must exist.
func Load(envFiles ...string) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			log.Fatal(err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	AppConfig = cfg
}

// FromEnv builds a Config from environment variables without validating it
func FromEnv() (*Config, error) {
	sessionTTL, err := time.ParseDuration(GetEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	maxUpload, err := strconv.ParseInt(GetEnv("MAX_UPLOAD_BYTES", strconv.Itoa(5<<20)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
	}

	port := GetEnv("PORT", "3000")

	return &Config{
		Port:        port,
		Env:         GetEnv("ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		DBPath:      GetEnv("DB_PATH", "./data/site.db"),
		BaseURL:     strings.TrimRight(GetEnv("BASE_URL", "http://localhost:"+port), "/"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),

		AdminEmail:    GetEnv("ADMIN_EMAIL", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
		SessionTTL:    sessionTTL,

		StorageDriver:  strings.ToLower(GetEnv("STORAGE_DRIVER", StorageLocal)),
		UploadDir:      GetEnv("UPLOAD_DIR", "./data/uploads"),
		MaxUploadBytes: maxUpload,

		S3Bucket:    GetEnv("S3_BUCKET", ""),
		S3Region:    GetEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  GetEnv("S3_ENDPOINT", ""),
		S3PublicURL: GetEnv("S3_PUBLIC_URL", ""),
		S3AccessKey: GetEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey: GetEnv("S3_SECRET_ACCESS_KEY", ""),

		DriveCredentialsFile: GetEnv("DRIVE_CREDENTIALS_FILE", ""),
		DriveFolderID:        GetEnv("DRIVE_FOLDER_ID", ""),
	}, nil
}

// Validate checks the combination of settings, reporting every problem at once
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case "development", "production", "test":
	default:
		errs = append(errs, fmt.Errorf("ENV must be development, production or test, got %q", c.Env))
	}

	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together"))
	}
	if c.AdminPassword != "" && (len(c.AdminPassword) < 8 || len(c.AdminPassword) > 72) {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be between 8 and 72 characters"))
	}

	switch c.StorageDriver {
	case StorageLocal:
		if c.UploadDir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for local storage"))
		}
	case StorageS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for s3 storage"))
		}
	case StorageDrive:
		if c.DriveCredentialsFile == "" {
			errs = append(errs, errors.New("DRIVE_CREDENTIALS_FILE is required for drive storage"))
		}
		if c.DriveFolderID == "" {
			errs = append(errs, errors.New("DRIVE_FOLDER_ID is required for drive storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be local, s3 or drive, got %q", c.StorageDriver))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
