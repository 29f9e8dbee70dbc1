package shelf

import (
	"context"
	"errors"
	"log/slog"

	"github.com/daheepark/chaekdam/internal/platform/dberr"
	"github.com/daheepark/chaekdam/internal/platform/validate"
	"github.com/daheepark/chaekdam/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListBooks loads the owner's full shelf and evaluates the requested view
// over it. The view never touches storage: filtering and ordering happen
// in-process so the same snapshot always yields the same result.
func (service *Service) ListBooks(ctx context.Context, ownerID string, view ViewState) ([]Book, error) {
	books, err := service.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Apply(books, view), nil
}

func (service *Service) CreateBook(ctx context.Context, ownerID string, book *Book) error {
	book.normalize()
	if err := validateBook(book); err != nil {
		return err
	}

	book.ID = uuid.New()
	if err := service.repo.Create(ctx, ownerID, book); err != nil {
		return err
	}

	service.logger.Info("book_added",
		slog.String("book_id", book.ID),
		slog.String("isbn", book.ISBN),
	)
	return nil
}

// UpdateBook replaces the stored record wholesale. Every descriptive and
// personal field comes from the input; only ID, AddedAt, and ownership
// survive from the stored row.
func (service *Service) UpdateBook(ctx context.Context, ownerID, id string, book *Book) error {
	book.ID = id
	book.normalize()

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := validateBook(book); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, ownerID, book); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.String("book_id", id))
	return nil
}

// DeleteBook removes a record from the owner's shelf. Deleting a record that
// is already gone is a no-op, so retried deletes stay safe. A malformed id
// can never name a stored row, so it falls under the same no-op contract
// instead of reaching the database as an invalid UUID literal.
func (service *Service) DeleteBook(ctx context.Context, ownerID, id string) error {
	validator := &validate.Validator{}
	validator.UUID("id", id)
	if validator.Err() != nil {
		return nil
	}

	removed, err := service.repo.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil
		}
		return err
	}

	if removed {
		service.logger.Info("book_removed", slog.String("book_id", id))
	}
	return nil
}

func (book *Book) normalize() {
	if book.ReadStatus == "" {
		book.ReadStatus = StatusNotStarted
	}
}

func validateBook(book *Book) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 500)
	validator.Required(FieldAuthor, book.Author).MaxLen(FieldAuthor, book.Author, 300)
	validator.Required(FieldISBN, book.ISBN).ISBN(FieldISBN, book.ISBN)
	validator.OneOf(FieldReadStatus, string(book.ReadStatus),
		string(StatusNotStarted), string(StatusInProgress), string(StatusFinished))
	validator.Range(FieldRating, book.Rating, 0, 5)

	return validator.Err()
}
