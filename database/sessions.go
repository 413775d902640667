package database

import (
	"suredoor/models"
	"time"
)

// ==================== SESSIONS ====================

func scanSession(s rowScanner) (*models.Session, error) {
	var sess models.Session
	if err := s.Scan(&sess.ID, &sess.Email, &sess.ExpiresAt, &sess.CreatedAt, &sess.LastUsedAt); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *Repository) CreateSession(s *models.Session) error {
	_, err := r.db.Exec(`
		INSERT INTO sessions (id, email, expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.Email, s.ExpiresAt, s.CreatedAt, s.LastUsedAt)
	return err
}

// GetSession returns the session only while it has not expired
func (r *Repository) GetSession(id string, now time.Time) (*models.Session, error) {
	row := r.db.QueryRow(`
		SELECT id, email, expires_at, created_at, last_used_at
		FROM sessions
		WHERE id = ? AND expires_at > ?
	`, id, now)
	return scanOne(row, scanSession)
}

func (r *Repository) TouchSession(id string, now time.Time) error {
	_, err := r.db.Exec(`UPDATE sessions SET last_used_at = ? WHERE id = ?`, now, id)
	return err
}

func (r *Repository) DeleteSession(id string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteSessionsForEmail drops every session of one account, e.g. after a password change
func (r *Repository) DeleteSessionsForEmail(email string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE email = ?", email)
	return err
}

// DeleteExpiredSessions purges sessions past their expiry and reports how many went
func (r *Repository) DeleteExpiredSessions(now time.Time) (int64, error) {
	res, err := r.db.Exec("DELETE FROM sessions WHERE expires_at <= ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
