package services

import (
	"log/slog"
	"time"

	"suredoor/models"
)

const (
	recentMessageCount  = 5
	failedDeletionLimit = 10
)

// DashboardStats is the admin overview
type DashboardStats struct {
	BlogPosts        int                      `json:"blog_posts"`
	GalleryImages    int                      `json:"gallery_images"`
	TeamMembers      int                      `json:"team_members"`
	Programs         int                      `json:"programs"`
	Events           int                      `json:"events"`
	Messages         int                      `json:"messages"`
	UnreadMessages   int                      `json:"unread_messages"`
	Donations        int                      `json:"donations"`
	DonationTotal    int64                    `json:"donation_total"`
	DonationMonth    int64                    `json:"donation_month"`
	MonthlyDonors    int                      `json:"monthly_donors"`
	PendingDeletions int                      `json:"pending_deletions"`
	FailedDeletions  []models.StorageDeletion `json:"failed_deletions"`
	RecentMessages   []models.ContactMessage  `json:"recent_messages"`
}

// DashboardService aggregates counters for the admin overview
type DashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Stats collects every counter. Each source fails on its own: a broken
// counter is logged and reported as zero.
func (ds *DashboardService) Stats(now time.Time) DashboardStats {
	stats := DashboardStats{
		RecentMessages:  []models.ContactMessage{},
		FailedDeletions: []models.StorageDeletion{},
	}

	stats.BlogPosts = countOrZero("blog_posts", ds.repo.CountBlogPosts)
	stats.GalleryImages = countOrZero("gallery_images", ds.repo.CountGalleryImages)
	stats.TeamMembers = countOrZero("team_members", ds.repo.CountTeamMembers)
	stats.Programs = countOrZero("programs", ds.repo.CountPrograms)
	stats.Events = countOrZero("events", ds.repo.CountEvents)
	stats.UnreadMessages = countOrZero("unread_messages", ds.repo.CountUnreadMessages)
	stats.PendingDeletions = countOrZero("pending_deletions", ds.repo.CountPendingDeletions)

	if failed, err := ds.repo.GetFailedDeletions(failedDeletionLimit); err != nil {
		slog.Warn("dashboard source failed", "source", "failed_deletions", "error", err)
	} else if failed != nil {
		stats.FailedDeletions = failed
	}

	if messages, err := ds.repo.GetMessages(); err != nil {
		slog.Warn("dashboard source failed", "source", "messages", "error", err)
	} else {
		stats.Messages = len(messages)
		if len(messages) > recentMessageCount {
			messages = messages[:recentMessageCount]
		}
		stats.RecentMessages = messages
	}

	if donations, err := ds.repo.GetDonationStats(monthStart(now)); err != nil {
		slog.Warn("dashboard source failed", "source", "donations", "error", err)
	} else {
		stats.Donations = donations.Count
		stats.DonationTotal = donations.TotalAmount
		stats.DonationMonth = donations.ThisMonthAmount
		stats.MonthlyDonors = donations.MonthlyDonors
	}

	return stats
}

func countOrZero(source string, count func() (int, error)) int {
	n, err := count()
	if err != nil {
		slog.Warn("dashboard source failed", "source", source, "error", err)
		return 0
	}
	return n
}
