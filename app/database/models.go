package database

import (
	"time"
)

// MetricRecord is one entity (keyword or page) observed in one period.
// CTR and Position are nil when the import had no value for them.
type MetricRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Clicks      int       `json:"clicks"`
	Impressions int       `json:"impressions"`
	CTR         *float64  `json:"ctr"`
	Position    *float64  `json:"position"`
	Period      string    `json:"period"`
	CreatedAt   time.Time `json:"created_at"`
}

// Note is a freeform annotation attached to a keyword or page. Notes
// are never updated or deleted.
type Note struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityName string    `json:"entity_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// EntityLink associates a keyword with a page URL. Duplicates are
// permitted; there is no delete operation.
type EntityLink struct {
	ID        int64     `json:"id"`
	Keyword   string    `json:"keyword"`
	PageURL   string    `json:"page_url"`
	CreatedAt time.Time `json:"created_at"`
}
