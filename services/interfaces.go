package services

import "pocket-notes/models"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(in models.NoteInput) (*models.Note, error)
	GetNote(id int64) (*models.Note, error)
	ListNotes() ([]models.Note, error)
	SearchNotes(query string) ([]models.Note, error)
	UpdateNote(id int64, in models.NoteInput) error
	DeleteNote(id int64) error
}

// InputValidator checks caller-supplied structs before they reach storage
type InputValidator interface {
	Validate(i interface{}) error
}
