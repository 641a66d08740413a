package models

// NoteDraft holds what the user typed into the "create note" form.
// Password is sent once with the create request and never kept afterwards.
type NoteDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Password string `json:"password"`
}

// IsEmpty reports whether every draft field is the empty string.
func (d NoteDraft) IsEmpty() bool {
	return d.Title == "" && d.Content == "" && d.Password == ""
}

// Note is a note as assigned by the server on creation.
// There is deliberately no password field.
type Note struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteContent is the revealed body of a note after a successful verification.
type NoteContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
