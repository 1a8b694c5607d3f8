package models

// Note is a single persisted note. ID and CreatedAt are assigned by the store.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
}

// NoteInput holds the caller-editable fields of a note
type NoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Date    string `json:"date" validate:"required,dateformat"`
	Time    string `json:"time" validate:"required,timeformat"`
}

type SearchResponse struct {
	Query string `json:"query"`
	Notes []Note `json:"notes"`
}
