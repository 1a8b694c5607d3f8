package services

import (
	"log/slog"
	"pocket-notes/models"
	"strings"
)

// NoteService is the boundary the presentation layer talks to.
// Writes report every failure; reads never fail and fall back to an empty list.
type NoteService struct {
	repo      NoteRepository
	validator InputValidator
	logger    *slog.Logger
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository, validator InputValidator, logger *slog.Logger) *NoteService {
	return &NoteService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// Create validates and stores a new note
func (ns *NoteService) Create(title, content, date, time string) (*models.Note, error) {
	in, err := ns.prepare(title, content, date, time)
	if err != nil {
		return nil, err
	}

	note, err := ns.repo.CreateNote(in)
	if err != nil {
		ns.logger.Error("failed to create note", "error", err)
		return nil, err
	}

	ns.logger.Debug("note created", "id", note.ID)
	return note, nil
}

// List returns notes whose title or date contains query.
// An empty query yields an empty list; use All for the full set.
func (ns *NoteService) List(query string) []models.Note {
	notes, err := ns.repo.SearchNotes(query)
	if err != nil {
		ns.logger.Error("note search failed", "query", query, "error", err)
		return []models.Note{}
	}
	return notes
}

// All returns every note, newest first
func (ns *NoteService) All() []models.Note {
	notes, err := ns.repo.ListNotes()
	if err != nil {
		ns.logger.Error("note listing failed", "error", err)
		return []models.Note{}
	}
	return notes
}

// Get retrieves a single note
func (ns *NoteService) Get(id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Update replaces the editable fields of a note. Updating a missing id succeeds without effect.
func (ns *NoteService) Update(id int64, title, content, date, time string) error {
	in, err := ns.prepare(title, content, date, time)
	if err != nil {
		return err
	}

	if err := ns.repo.UpdateNote(id, in); err != nil {
		ns.logger.Error("failed to update note", "id", id, "error", err)
		return err
	}
	return nil
}

// Delete removes a note. Deleting twice is fine.
func (ns *NoteService) Delete(id int64) error {
	if err := ns.repo.DeleteNote(id); err != nil {
		ns.logger.Error("failed to delete note", "id", id, "error", err)
		return err
	}
	return nil
}

// prepare trims the free-text fields and validates the result
func (ns *NoteService) prepare(title, content, date, time string) (models.NoteInput, error) {
	in := models.NoteInput{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Date:    date,
		Time:    time,
	}

	if err := ns.validator.Validate(in); err != nil {
		return models.NoteInput{}, err
	}
	return in, nil
}
