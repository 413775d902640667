package models

import "time"

type SiteSetting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting keys backing SiteSettings
const (
	SettingSiteName        = "site_name"
	SettingSiteDescription = "site_description"
	SettingContactEmail    = "contact_email"
	SettingContactPhone    = "contact_phone"
	SettingAddress         = "address"
	SettingFacebookURL     = "facebook_url"
	SettingTwitterURL      = "twitter_url"
	SettingInstagramURL    = "instagram_url"
	SettingYoutubeURL      = "youtube_url"

	SettingAdminEmail        = "admin_email"
	SettingAdminPasswordHash = "admin_password_hash"
	// SettingLegacyAdminPassword is the plaintext key older deployments used.
	SettingLegacyAdminPassword = "admin_password"
)

// SiteSettings is the typed view of the key/value settings table
type SiteSettings struct {
	SiteName        string `json:"siteName" form:"siteName" validate:"required,max=200"`
	SiteDescription string `json:"siteDescription" form:"siteDescription" validate:"max=500"`
	ContactEmail    string `json:"contactEmail" form:"contactEmail" validate:"omitempty,email"`
	ContactPhone    string `json:"contactPhone" form:"contactPhone" validate:"max=50"`
	Address         string `json:"address" form:"address" validate:"max=300"`
	FacebookURL     string `json:"facebookUrl" form:"facebookUrl" validate:"omitempty,url"`
	TwitterURL      string `json:"twitterUrl" form:"twitterUrl" validate:"omitempty,url"`
	InstagramURL    string `json:"instagramUrl" form:"instagramUrl" validate:"omitempty,url"`
	YoutubeURL      string `json:"youtubeUrl" form:"youtubeUrl" validate:"omitempty,url"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "Suredoor International Centre for Research and Rehabilitation",
		SiteDescription: "A humanitarian body dedicated to restoring the dignity of man",
		ContactEmail:    "info@suredoorintl.org.ng",
		ContactPhone:    "+234 000 000 0000",
		Address:         "Lagos State, Nigeria",
	}
}

// Values flattens the settings into setting keys
func (s SiteSettings) Values() map[string]string {
	return map[string]string{
		SettingSiteName:        s.SiteName,
		SettingSiteDescription: s.SiteDescription,
		SettingContactEmail:    s.ContactEmail,
		SettingContactPhone:    s.ContactPhone,
		SettingAddress:         s.Address,
		SettingFacebookURL:     s.FacebookURL,
		SettingTwitterURL:      s.TwitterURL,
		SettingInstagramURL:    s.InstagramURL,
		SettingYoutubeURL:      s.YoutubeURL,
	}
}

// Apply overlays stored key/value pairs on top of s
func (s *SiteSettings) Apply(values map[string]string) {
	fields := map[string]*string{
		SettingSiteName:        &s.SiteName,
		SettingSiteDescription: &s.SiteDescription,
		SettingContactEmail:    &s.ContactEmail,
		SettingContactPhone:    &s.ContactPhone,
		SettingAddress:         &s.Address,
		SettingFacebookURL:     &s.FacebookURL,
		SettingTwitterURL:      &s.TwitterURL,
		SettingInstagramURL:    &s.InstagramURL,
		SettingYoutubeURL:      &s.YoutubeURL,
	}
	for key, value := range values {
		if field, ok := fields[key]; ok {
			*field = value
		}
	}
}

type Session struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// Storage deletion queue states
type DeletionStatus string

const (
	DeletionPending   DeletionStatus = "pending"
	DeletionFailed    DeletionStatus = "failed"
	DeletionAbandoned DeletionStatus = "abandoned"
)

// MaxDeletionRetries is the number of attempts before a deletion is abandoned
const MaxDeletionRetries = 5

type StorageDeletion struct {
	ID            string         `json:"id"`
	Bucket        string         `json:"bucket"`
	ObjectKey     string         `json:"object_key"`
	Status        DeletionStatus `json:"status"`
	RetryCount    int            `json:"retry_count"`
	LastError     string         `json:"last_error,omitempty"`
	LastAttemptAt *time.Time     `json:"last_attempt_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
