package database

import "suredoor/models"

// ==================== GALLERY ====================

const galleryColumns = `id, title, description, image_url, category, created_at`

func scanGalleryImage(s rowScanner) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := s.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) GetGalleryImages() ([]models.GalleryImage, error) {
	rows, err := r.db.Query(`SELECT ` + galleryColumns + ` FROM gallery_images ORDER BY created_at DESC`)
	return scanAll(rows, err, scanGalleryImage)
}

func (r *Repository) GetGalleryImageByID(id string) (*models.GalleryImage, error) {
	row := r.db.QueryRow(`SELECT `+galleryColumns+` FROM gallery_images WHERE id = ?`, id)
	return scanOne(row, scanGalleryImage)
}

// GetGalleryCategories returns the distinct categories in use, alphabetically
func (r *Repository) GetGalleryCategories() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT category FROM gallery_images
		WHERE category != ''
		ORDER BY category ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *Repository) CreateGalleryImage(g *models.GalleryImage) error {
	_, err := r.db.Exec(`
		INSERT INTO gallery_images (`+galleryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.ID, g.Title, g.Description, g.ImageURL, g.Category, g.CreatedAt)
	return err
}

func (r *Repository) DeleteGalleryImage(id string) error {
	_, err := r.db.Exec("DELETE FROM gallery_images WHERE id = ?", id)
	return err
}
