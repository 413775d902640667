package database

import (
	"database/sql"
	"errors"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOne runs a single-row scan and maps sql.ErrNoRows to (nil, nil)
func scanOne[T any](row *sql.Row, scan func(rowScanner) (*T, error)) (*T, error) {
	item, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// scanAll collects every row, returning an empty (non-nil) slice when there are none
func scanAll[T any](rows *sql.Rows, err error, scan func(rowScanner) (*T, error)) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (r *Repository) exists(query string, args ...any) (bool, error) {
	var n int
	if err := r.db.QueryRow(query, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository) count(table string) (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

// ==================== COUNTS ====================

func (r *Repository) CountBlogPosts() (int, error)     { return r.count("blog_posts") }
func (r *Repository) CountPrograms() (int, error)      { return r.count("programs") }
func (r *Repository) CountEvents() (int, error)        { return r.count("events") }
func (r *Repository) CountTeamMembers() (int, error)   { return r.count("team_members") }
func (r *Repository) CountGalleryImages() (int, error) { return r.count("gallery_images") }

// Ping checks the database connection
func (r *Repository) Ping() error {
	return r.db.Ping()
}
