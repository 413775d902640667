package database

import (
	"suredoor/models"
	"time"
)

// ==================== EVENTS ====================

const eventColumns = `id, title, description, date, location, image, created_at`

func scanEvent(s rowScanner) (*models.Event, error) {
	var e models.Event
	if err := s.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Image, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEvents returns events soonest first
func (r *Repository) GetEvents() ([]models.Event, error) {
	rows, err := r.db.Query(`SELECT ` + eventColumns + ` FROM events ORDER BY date ASC`)
	return scanAll(rows, err, scanEvent)
}

// GetUpcomingEvents returns events on or after from, soonest first
func (r *Repository) GetUpcomingEvents(from time.Time, limit int) ([]models.Event, error) {
	rows, err := r.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		WHERE date >= ?
		ORDER BY date ASC
		LIMIT ?
	`, from, limit)
	return scanAll(rows, err, scanEvent)
}

func (r *Repository) GetEventByID(id string) (*models.Event, error) {
	row := r.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanOne(row, scanEvent)
}

func (r *Repository) CreateEvent(e *models.Event) error {
	_, err := r.db.Exec(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Title, e.Description, e.Date, e.Location, e.Image, e.CreatedAt)
	return err
}

func (r *Repository) UpdateEvent(e *models.Event) error {
	_, err := r.db.Exec(`
		UPDATE events SET
			title = ?,
			description = ?,
			date = ?,
			location = ?,
			image = ?
		WHERE id = ?
	`, e.Title, e.Description, e.Date, e.Location, e.Image, e.ID)
	return err
}

func (r *Repository) DeleteEvent(id string) error {
	_, err := r.db.Exec("DELETE FROM events WHERE id = ?", id)
	return err
}
