package database

import (
	"fmt"
	"time"
)

// LinkRepository handles database operations for keyword-page links
type LinkRepository struct {
	db *DB
}

func NewLinkRepository(db *DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Add associates a keyword with a page URL. Duplicate associations are
// permitted; idempotence is the caller's concern.
func (r *LinkRepository) Add(keyword, pageURL string, createdAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO entity_links (keyword, page_url, created_at)
		VALUES ($1, $2, $3)
	`, keyword, pageURL, createdAt)

	if err != nil {
		return fmt.Errorf("failed to add link: %w", err)
	}

	return nil
}

// ListForKeyword returns the links recorded for a keyword.
func (r *LinkRepository) ListForKeyword(keyword string) ([]EntityLink, error) {
	return r.queryLinks(`
		SELECT id, keyword, page_url, created_at
		FROM entity_links
		WHERE keyword = $1
		ORDER BY id
	`, keyword)
}

// ListForPage returns the links recorded for a page URL.
func (r *LinkRepository) ListForPage(pageURL string) ([]EntityLink, error) {
	return r.queryLinks(`
		SELECT id, keyword, page_url, created_at
		FROM entity_links
		WHERE page_url = $1
		ORDER BY id
	`, pageURL)
}

func (r *LinkRepository) queryLinks(query string, args ...interface{}) ([]EntityLink, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	var links []EntityLink
	for rows.Next() {
		var link EntityLink
		err := rows.Scan(&link.ID, &link.Keyword, &link.PageURL, &link.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return links, nil
}
