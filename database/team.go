package database

import "suredoor/models"

// ==================== TEAM MEMBERS ====================

const teamMemberColumns = `id, name, role, bio, image, display_order, active, created_at`

func scanTeamMember(s rowScanner) (*models.TeamMember, error) {
	var m models.TeamMember
	if err := s.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Image, &m.DisplayOrder, &m.Active, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTeamMembers returns members by display order, ties broken by creation time
func (r *Repository) GetTeamMembers(activeOnly bool) ([]models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := r.db.Query(query)
	return scanAll(rows, err, scanTeamMember)
}

func (r *Repository) GetTeamMemberByID(id string) (*models.TeamMember, error) {
	row := r.db.QueryRow(`SELECT `+teamMemberColumns+` FROM team_members WHERE id = ?`, id)
	return scanOne(row, scanTeamMember)
}

func (r *Repository) CreateTeamMember(m *models.TeamMember) error {
	_, err := r.db.Exec(`
		INSERT INTO team_members (`+teamMemberColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Role, m.Bio, m.Image, m.DisplayOrder, m.Active, m.CreatedAt)
	return err
}

func (r *Repository) UpdateTeamMember(m *models.TeamMember) error {
	_, err := r.db.Exec(`
		UPDATE team_members SET
			name = ?,
			role = ?,
			bio = ?,
			image = ?,
			display_order = ?,
			active = ?
		WHERE id = ?
	`, m.Name, m.Role, m.Bio, m.Image, m.DisplayOrder, m.Active, m.ID)
	return err
}

func (r *Repository) DeleteTeamMember(id string) error {
	_, err := r.db.Exec("DELETE FROM team_members WHERE id = ?", id)
	return err
}
