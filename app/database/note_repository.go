package database

import (
	"fmt"
	"time"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *DB
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Add stores one note. Notes are append-only: there is no update or
// delete path.
func (r *NoteRepository) Add(entityType, entityName, body string, createdAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO notes (entity_type, entity_name, body, created_at)
		VALUES ($1, $2, $3, $4)
	`, entityType, entityName, body, createdAt)

	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	return nil
}

// ListForEntity returns the notes attached to one entity, newest first.
func (r *NoteRepository) ListForEntity(entityType, entityName string) ([]Note, error) {
	rows, err := r.db.Query(`
		SELECT id, entity_type, entity_name, body, created_at
		FROM notes
		WHERE entity_type = $1 AND entity_name = $2
		ORDER BY id DESC
	`, entityType, entityName)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var note Note
		err := rows.Scan(&note.ID, &note.EntityType, &note.EntityName, &note.Body, &note.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// NoteCount returns the total number of notes.
func (r *NoteRepository) NoteCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get note count: %w", err)
	}
	return count, nil
}
