package services

import (
	"suredoor/models"
)

// reservedSettings hold admin credentials and never leave the settings service
var reservedSettings = map[string]bool{
	models.SettingAdminEmail:          true,
	models.SettingAdminPasswordHash:   true,
	models.SettingLegacyAdminPassword: true,
}

func IsReservedSetting(key string) bool {
	return reservedSettings[key]
}

// SettingsService manages the public key/value site settings
type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetAll returns every non-reserved setting
func (ss *SettingsService) GetAll() ([]models.SiteSetting, error) {
	settings, err := ss.repo.GetSettings()
	if err != nil {
		return nil, err
	}

	visible := make([]models.SiteSetting, 0, len(settings))
	for _, s := range settings {
		if !IsReservedSetting(s.Key) {
			visible = append(visible, s)
		}
	}
	return visible, nil
}

// Get returns nil when the key is not set
func (ss *SettingsService) Get(key string) (*models.SiteSetting, error) {
	if IsReservedSetting(key) {
		return nil, ErrReservedSetting
	}
	return ss.repo.GetSetting(key)
}

func (ss *SettingsService) Update(key, value string) error {
	if IsReservedSetting(key) {
		return ErrReservedSetting
	}
	return ss.repo.UpsertSetting(key, value)
}

// Site returns the typed settings; keys never stored keep their defaults
func (ss *SettingsService) Site() (models.SiteSettings, error) {
	site := models.DefaultSiteSettings()

	values, err := ss.repo.GetSettingsMap()
	if err != nil {
		return site, err
	}

	site.Apply(values)
	if site.SiteName == "" {
		site.SiteName = models.DefaultSiteSettings().SiteName
	}
	return site, nil
}

func (ss *SettingsService) UpdateSite(site models.SiteSettings) error {
	return ss.repo.UpsertSettings(site.Values())
}
