package services

import (
	"context"
	"suredoor/models"
	"time"
)

// BlogRepository defines the data access BlogService needs
type BlogRepository interface {
	GetBlogPosts(publishedOnly bool) ([]models.BlogPost, error)
	GetBlogPostByID(id string) (*models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	BlogSlugExists(slug, excludeID string) (bool, error)
	CreateBlogPost(p *models.BlogPost) error
	UpdateBlogPost(p *models.BlogPost) error
	DeleteBlogPost(id string) error
}

// ProgramRepository defines the data access ProgramService needs
type ProgramRepository interface {
	GetPrograms(activeOnly bool) ([]models.Program, error)
	GetProgramByID(id string) (*models.Program, error)
	GetProgramBySlug(slug string) (*models.Program, error)
	ProgramSlugExists(slug, excludeID string) (bool, error)
	CreateProgram(p *models.Program) error
	UpdateProgram(p *models.Program) error
	DeleteProgram(id string) error
}

type EventRepository interface {
	GetEvents() ([]models.Event, error)
	GetUpcomingEvents(from time.Time, limit int) ([]models.Event, error)
	GetEventByID(id string) (*models.Event, error)
	CreateEvent(e *models.Event) error
	UpdateEvent(e *models.Event) error
	DeleteEvent(id string) error
}

type TeamRepository interface {
	GetTeamMembers(activeOnly bool) ([]models.TeamMember, error)
	GetTeamMemberByID(id string) (*models.TeamMember, error)
	CreateTeamMember(m *models.TeamMember) error
	UpdateTeamMember(m *models.TeamMember) error
	DeleteTeamMember(id string) error
}

type GalleryRepository interface {
	GetGalleryImages() ([]models.GalleryImage, error)
	GetGalleryImageByID(id string) (*models.GalleryImage, error)
	GetGalleryCategories() ([]string, error)
	CreateGalleryImage(g *models.GalleryImage) error
	DeleteGalleryImage(id string) error
}

type DonationRepository interface {
	GetDonations() ([]models.Donation, error)
	CreateDonation(d *models.Donation) error
	GetDonationStats(monthStart time.Time) (*models.DonationStats, error)
}

type MessageRepository interface {
	GetMessages() ([]models.ContactMessage, error)
	CreateMessage(m *models.ContactMessage) error
	MarkMessageRead(id string) (bool, error)
	DeleteMessage(id string) (bool, error)
	CountUnreadMessages() (int, error)
}

// SettingsRepository defines the key/value settings store
type SettingsRepository interface {
	GetSettings() ([]models.SiteSetting, error)
	GetSettingsMap() (map[string]string, error)
	GetSetting(key string) (*models.SiteSetting, error)
	UpsertSetting(key, value string) error
	UpsertSettings(values map[string]string) error
	DeleteSetting(key string) error
}

// DashboardRepository defines the counters the dashboard aggregates
type DashboardRepository interface {
	CountBlogPosts() (int, error)
	CountPrograms() (int, error)
	CountEvents() (int, error)
	CountTeamMembers() (int, error)
	CountGalleryImages() (int, error)
	CountUnreadMessages() (int, error)
	CountPendingDeletions() (int, error)
	GetFailedDeletions(limit int) ([]models.StorageDeletion, error)
	GetMessages() ([]models.ContactMessage, error)
	GetDonationStats(monthStart time.Time) (*models.DonationStats, error)
}

// DeletionQueue records storage objects the janitor must remove
type DeletionQueue interface {
	EnqueueDeletion(bucket, key string) error
}

// DeletionWorker defines the interface for background deletion operations
type DeletionWorker interface {
	DeleteNow()
}

// ImageRemover releases an uploaded image once the record pointing at it is gone
type ImageRemover interface {
	DeleteImage(ctx context.Context, url, bucket string) (bool, error)
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(email string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
	DeleteAllFor(email string) error
}
