package database

import (
	"database/sql"
	"fmt"
	"pocket-notes/models"
	"strings"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

const noteColumns = `id, title, content, date, time, created_at`

// Newest first; id breaks ties between notes created in the same instant
const noteOrder = `ORDER BY created_at DESC, id DESC`

// likeEscaper escapes the LIKE wildcards so a search term is matched literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ==================== NOTES ====================

// CreateNote inserts a note and returns it with the store-assigned id and created_at
func (r *Repository) CreateNote(in models.NoteInput) (*models.Note, error) {
	note := models.Note{
		Title:   in.Title,
		Content: in.Content,
		Date:    in.Date,
		Time:    in.Time,
	}

	err := r.db.QueryRow(`
		INSERT INTO notes (title, content, date, time)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at
	`, in.Title, in.Content, in.Date, in.Time).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert note: %w", ErrStorageWrite, err)
	}

	return &note, nil
}

// GetNote returns nil, nil when no note has the given id
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRow(`
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = ?
	`, id).Scan(&note.ID, &note.Title, &note.Content, &note.Date, &note.Time, &note.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get note %d: %w", ErrStorageRead, id, err)
	}

	return &note, nil
}

// ListNotes returns every note, newest first
func (r *Repository) ListNotes() ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT ` + noteColumns + `
		FROM notes
		` + noteOrder)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %w", ErrStorageRead, err)
	}
	return scanNotes(rows)
}

// SearchNotes returns notes whose title or date contains query as a
// case-sensitive substring. An empty query matches nothing.
func (r *Repository) SearchNotes(query string) ([]models.Note, error) {
	if query == "" {
		return []models.Note{}, nil
	}

	pattern := "%" + likeEscaper.Replace(query) + "%"

	rows, err := r.db.Query(`
		SELECT `+noteColumns+`
		FROM notes
		WHERE title LIKE ? ESCAPE '\' OR date LIKE ? ESCAPE '\'
		`+noteOrder, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: search notes: %w", ErrStorageRead, err)
	}
	return scanNotes(rows)
}

// UpdateNote overwrites the editable fields of a note. created_at is never
// touched, and a missing id is not an error.
func (r *Repository) UpdateNote(id int64, in models.NoteInput) error {
	_, err := r.db.Exec(`
		UPDATE notes SET
			title = ?,
			content = ?,
			date = ?,
			time = ?
		WHERE id = ?
	`, in.Title, in.Content, in.Date, in.Time, id)
	if err != nil {
		return fmt.Errorf("%w: update note %d: %w", ErrStorageWrite, id, err)
	}
	return nil
}

// DeleteNote permanently removes a note. Deleting a missing id is a no-op.
func (r *Repository) DeleteNote(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete note %d: %w", ErrStorageWrite, id, err)
	}
	return nil
}

// CountNotes returns the number of stored notes
func (r *Repository) CountNotes() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count notes: %w", ErrStorageRead, err)
	}
	return n, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID, &note.Title, &note.Content,
			&note.Date, &note.Time, &note.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan note: %w", ErrStorageRead, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate notes: %w", ErrStorageRead, err)
	}
	return notes, nil
}
