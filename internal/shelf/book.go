package shelf

import "time"

// ReadStatus tracks how far the owner has gotten through a book.
type ReadStatus string

const (
	StatusNotStarted ReadStatus = "not-started"
	StatusInProgress ReadStatus = "in-progress"
	StatusFinished   ReadStatus = "finished"
)

// Book represents one saved record on a user's shelf.
//
// Descriptive fields come from the catalog lookup (or manual entry); personal
// fields are owned by the shelf. AddedAt is set once at save time and never
// changes afterwards, even through full-record updates.
type Book struct {
	ID          string     `json:"id"`
	ISBN        string     `json:"isbn"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Publisher   string     `json:"publisher,omitempty"`
	PublishDate string     `json:"publishDate,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	ReadStatus  ReadStatus `json:"readStatus"`
	Rating      int        `json:"rating"`
	Notes       string     `json:"notes,omitempty"`
	AddedAt     time.Time  `json:"addedDate"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldISBN       = "isbn"
	FieldTitle      = "title"
	FieldAuthor     = "author"
	FieldReadStatus = "readStatus"
	FieldRating     = "rating"
)
