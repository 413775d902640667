package database

import (
	"suredoor/models"
	"time"
)

// ==================== PROGRAMS ====================

const programColumns = `id, title, slug, description, content, image, department, active, created_at, updated_at`

func scanProgram(s rowScanner) (*models.Program, error) {
	var p models.Program
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.Image,
		&p.Department, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetPrograms(activeOnly bool) ([]models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	return scanAll(rows, err, scanProgram)
}

func (r *Repository) GetProgramByID(id string) (*models.Program, error) {
	row := r.db.QueryRow(`SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	return scanOne(row, scanProgram)
}

func (r *Repository) GetProgramBySlug(slug string) (*models.Program, error) {
	row := r.db.QueryRow(`SELECT `+programColumns+` FROM programs WHERE slug = ?`, slug)
	return scanOne(row, scanProgram)
}

func (r *Repository) ProgramSlugExists(slug, excludeID string) (bool, error) {
	return r.exists(`SELECT COUNT(*) FROM programs WHERE slug = ? AND id != ?`, slug, excludeID)
}

func (r *Repository) CreateProgram(p *models.Program) error {
	_, err := r.db.Exec(`
		INSERT INTO programs (`+programColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Title, p.Slug, p.Description, p.Content, p.Image,
		p.Department, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *Repository) UpdateProgram(p *models.Program) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE programs SET
			title = ?,
			slug = ?,
			description = ?,
			content = ?,
			image = ?,
			department = ?,
			active = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Title, p.Slug, p.Description, p.Content, p.Image,
		p.Department, p.Active, p.UpdatedAt, p.ID,
	)
	return err
}

func (r *Repository) DeleteProgram(id string) error {
	_, err := r.db.Exec("DELETE FROM programs WHERE id = ?", id)
	return err
}
