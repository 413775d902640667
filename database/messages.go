package database

import "suredoor/models"

// ==================== CONTACT MESSAGES ====================

const messageColumns = `id, name, email, subject, message, read, created_at`

func scanMessage(s rowScanner) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetMessages() ([]models.ContactMessage, error) {
	rows, err := r.db.Query(`SELECT ` + messageColumns + ` FROM contact_messages ORDER BY created_at DESC`)
	return scanAll(rows, err, scanMessage)
}

func (r *Repository) CreateMessage(m *models.ContactMessage) error {
	_, err := r.db.Exec(`
		INSERT INTO contact_messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Message, m.Read, m.CreatedAt)
	return err
}

// MarkMessageRead flags a message as read and reports whether it existed
func (r *Repository) MarkMessageRead(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE contact_messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteMessage removes a message and reports whether it existed
func (r *Repository) DeleteMessage(id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repository) CountUnreadMessages() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE read = 0`).Scan(&n)
	return n, err
}
