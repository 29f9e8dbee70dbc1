package shelf_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/dberr"
	"github.com/daheepark/chaekdam/internal/shelf"
)

// fakeRepository keeps books in memory, keyed by owner.
type fakeRepository struct {
	books map[string][]shelf.Book
	err   error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: map[string][]shelf.Book{}}
}

func (f *fakeRepository) ListByOwner(_ context.Context, ownerID string) ([]shelf.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]shelf.Book{}, f.books[ownerID]...), nil
}

func (f *fakeRepository) Create(_ context.Context, ownerID string, book *shelf.Book) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.books[ownerID] {
		if existing.ISBN == book.ISBN {
			return apperr.Conflict("This book is already on the shelf")
		}
	}
	book.AddedAt = time.Now()
	book.UpdatedAt = book.AddedAt
	f.books[ownerID] = append(f.books[ownerID], *book)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, ownerID string, book *shelf.Book) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.books[ownerID] {
		if existing.ID == book.ID {
			book.AddedAt = existing.AddedAt
			book.UpdatedAt = time.Now()
			f.books[ownerID][i] = *book
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeRepository) Delete(_ context.Context, ownerID, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i, existing := range f.books[ownerID] {
		if existing.ID == id {
			f.books[ownerID] = append(f.books[ownerID][:i], f.books[ownerID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTestService(repo shelf.Repository) *shelf.Service {
	return shelf.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validBook() *shelf.Book {
	return &shelf.Book{
		ISBN:       "9788966261024",
		Title:      "정보보안개론",
		Author:     "김철수",
		Category:   "IT",
		ReadStatus: shelf.StatusNotStarted,
	}
}

func TestCreateBook(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	book := validBook()
	err := service.CreateBook(context.Background(), "owner-1", book)

	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.False(t, book.AddedAt.IsZero())

	stored, err := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "정보보안개론", stored[0].Title)
}

func TestCreateBookDefaultsStatus(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	book := validBook()
	book.ReadStatus = ""

	require.NoError(t, service.CreateBook(context.Background(), "owner-1", book))
	assert.Equal(t, shelf.StatusNotStarted, book.ReadStatus)
}

func TestCreateBookValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*shelf.Book)
	}{
		{"missing_title", func(b *shelf.Book) { b.Title = "  " }},
		{"missing_author", func(b *shelf.Book) { b.Author = "" }},
		{"bad_isbn", func(b *shelf.Book) { b.ISBN = "not-an-isbn" }},
		{"bad_status", func(b *shelf.Book) { b.ReadStatus = "paused" }},
		{"rating_out_of_range", func(b *shelf.Book) { b.Rating = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newTestService(repo)

			book := validBook()
			tt.mutate(book)

			err := service.CreateBook(context.Background(), "owner-1", book)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)

			// The shelf must be untouched after a rejected save.
			stored, listErr := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{})
			require.NoError(t, listErr)
			assert.Empty(t, stored)
		})
	}
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.CreateBook(context.Background(), "owner-1", validBook()))

	err := service.CreateBook(context.Background(), "owner-1", validBook())

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestUpdateBookPreservesAddedAt(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	book := validBook()
	require.NoError(t, service.CreateBook(context.Background(), "owner-1", book))
	addedAt := book.AddedAt

	updated := validBook()
	updated.Title = "정보보안개론 (개정판)"
	updated.Rating = 4
	updated.ReadStatus = shelf.StatusFinished

	require.NoError(t, service.UpdateBook(context.Background(), "owner-1", book.ID, updated))

	stored, err := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "정보보안개론 (개정판)", stored[0].Title)
	assert.Equal(t, 4, stored[0].Rating)
	assert.True(t, addedAt.Equal(stored[0].AddedAt))
}

func TestUpdateBookUnknownID(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	err := service.UpdateBook(context.Background(), "owner-1", "0195efcb-0c4c-7e27-b974-b43b668e0001", validBook())

	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrNotFound) || isNotFound(err))
}

func TestDeleteBook(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	book := validBook()
	require.NoError(t, service.CreateBook(context.Background(), "owner-1", book))

	require.NoError(t, service.DeleteBook(context.Background(), "owner-1", book.ID))

	stored, err := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{})
	require.NoError(t, err)
	assert.Empty(t, stored)

	// Deleting again is a no-op, not an error.
	require.NoError(t, service.DeleteBook(context.Background(), "owner-1", book.ID))
}

func TestDeleteBookMalformedID(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	book := validBook()
	require.NoError(t, service.CreateBook(context.Background(), "owner-1", book))

	// A non-UUID id can never match a row, so it is the same no-op as
	// deleting an already-removed book, not a storage error.
	require.NoError(t, service.DeleteBook(context.Background(), "owner-1", "abc"))

	stored, err := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestListBooksAppliesView(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	first := validBook()
	require.NoError(t, service.CreateBook(context.Background(), "owner-1", first))

	second := validBook()
	second.ISBN = "9788998139766"
	second.Title = "미분적분학"
	second.Author = "이영희"
	second.Category = "수학"
	require.NoError(t, service.CreateBook(context.Background(), "owner-1", second))

	got, err := service.ListBooks(context.Background(), "owner-1", shelf.ViewState{Category: "수학"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "미분적분학", got[0].Title)
}

func TestListBooksOwnerScoped(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.CreateBook(context.Background(), "owner-1", validBook()))

	got, err := service.ListBooks(context.Background(), "owner-2", shelf.ViewState{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Code == "NOT_FOUND"
}
