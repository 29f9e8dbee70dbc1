package schema

// ShelfBookTable represents the 'shelf.book' table
type ShelfBookTable struct {
	Table       string
	ID          string
	OwnerID     string
	ISBN        string
	Title       string
	Author      string
	Publisher   string
	PublishDate string
	Category    string
	Description string
	Thumbnail   string
	ReadStatus  string
	Rating      string
	Notes       string
	AddedAt     string
	UpdatedAt   string
}

// ShelfBook is the schema definition for shelf.book
var ShelfBook = ShelfBookTable{
	Table:       "shelf.book",
	ID:          "id",
	OwnerID:     "ownerid",
	ISBN:        "isbn",
	Title:       "title",
	Author:      "author",
	Publisher:   "publisher",
	PublishDate: "publishdate",
	Category:    "category",
	Description: "description",
	Thumbnail:   "thumbnail",
	ReadStatus:  "readstatus",
	Rating:      "rating",
	Notes:       "notes",
	AddedAt:     "addedat",
	UpdatedAt:   "updatedat",
}

func (t ShelfBookTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.ISBN, t.Title, t.Author, t.Publisher, t.PublishDate,
		t.Category, t.Description, t.Thumbnail, t.ReadStatus, t.Rating, t.Notes,
		t.AddedAt, t.UpdatedAt,
	}
}
