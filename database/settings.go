package database

import (
	"suredoor/models"
	"time"

	"github.com/google/uuid"
)

// ==================== SITE SETTINGS ====================

func scanSetting(s rowScanner) (*models.SiteSetting, error) {
	var st models.SiteSetting
	if err := s.Scan(&st.ID, &st.Key, &st.Value, &st.UpdatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetSettings returns every stored setting ordered by key
func (r *Repository) GetSettings() ([]models.SiteSetting, error) {
	rows, err := r.db.Query(`SELECT id, key, value, updated_at FROM site_settings ORDER BY key ASC`)
	return scanAll(rows, err, scanSetting)
}

// GetSettingsMap returns the stored settings keyed by setting key
func (r *Repository) GetSettingsMap() (map[string]string, error) {
	settings, err := r.GetSettings()
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}

func (r *Repository) GetSetting(key string) (*models.SiteSetting, error) {
	row := r.db.QueryRow(`SELECT id, key, value, updated_at FROM site_settings WHERE key = ?`, key)
	return scanOne(row, scanSetting)
}

// UpsertSetting inserts the key or overwrites its value
func (r *Repository) UpsertSetting(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO site_settings (id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, uuid.New().String(), key, value, time.Now().UTC())
	return err
}

// UpsertSettings writes all values in a single transaction
func (r *Repository) UpsertSettings(values map[string]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO site_settings (id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for key, value := range values {
		if _, err := stmt.Exec(uuid.New().String(), key, value, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteSetting(key string) error {
	_, err := r.db.Exec("DELETE FROM site_settings WHERE key = ?", key)
	return err
}
