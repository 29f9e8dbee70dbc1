package shelf

import "context"

// Repository abstracts shelf persistence. All operations are scoped to a
// single owner; a record belonging to another user behaves as if it did not
// exist.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Book, error)
	Create(ctx context.Context, ownerID string, book *Book) error
	Update(ctx context.Context, ownerID string, book *Book) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
