package database

import (
	"suredoor/models"
	"time"
)

// ==================== BLOG POSTS ====================

const blogPostColumns = `id, title, slug, excerpt, content, featured_image, author, category, published, created_at, updated_at`

func scanBlogPost(s rowScanner) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
		&p.Author, &p.Category, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBlogPosts returns posts newest first, optionally only published ones
func (r *Repository) GetBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	return scanAll(rows, err, scanBlogPost)
}

func (r *Repository) GetBlogPostByID(id string) (*models.BlogPost, error) {
	row := r.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id)
	return scanOne(row, scanBlogPost)
}

func (r *Repository) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	row := r.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = ?`, slug)
	return scanOne(row, scanBlogPost)
}

// BlogSlugExists reports whether another post (not excludeID) already uses slug
func (r *Repository) BlogSlugExists(slug, excludeID string) (bool, error) {
	return r.exists(`SELECT COUNT(*) FROM blog_posts WHERE slug = ? AND id != ?`, slug, excludeID)
}

func (r *Repository) CreateBlogPost(p *models.BlogPost) error {
	_, err := r.db.Exec(`
		INSERT INTO blog_posts (`+blogPostColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.Author, p.Category, p.Published, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *Repository) UpdateBlogPost(p *models.BlogPost) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE blog_posts SET
			title = ?,
			slug = ?,
			excerpt = ?,
			content = ?,
			featured_image = ?,
			author = ?,
			category = ?,
			published = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
		p.Author, p.Category, p.Published, p.UpdatedAt, p.ID,
	)
	return err
}

func (r *Repository) DeleteBlogPost(id string) error {
	_, err := r.db.Exec("DELETE FROM blog_posts WHERE id = ?", id)
	return err
}
