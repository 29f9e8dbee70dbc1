// Package catalog looks up book metadata from the public catalog API.
//
// A lookup produces a Draft: pre-filled descriptive fields the user reviews
// and completes before the record is saved to their shelf. Drafts are never
// persisted here.
package catalog

import "context"

// Draft is an unsaved book candidate assembled from catalog metadata.
type Draft struct {
	ISBN        string   `json:"isbn"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Publisher   string   `json:"publisher,omitempty"`
	PublishDate string   `json:"publishDate,omitempty"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// Provider is the upstream catalog abstraction.
//
// Implementations must map "record does not exist" to apperr.NotFound and
// transport or upstream failures to apperr.Network, so handlers can tell
// "enter the book manually" apart from "retry later".
type Provider interface {
	LookupISBN(ctx context.Context, isbn string) (*Draft, error)
	Search(ctx context.Context, query string, page, pageSize int) ([]Draft, int, error)
}
