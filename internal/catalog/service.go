package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/daheepark/chaekdam/internal/platform/validate"
)

const (
	FieldISBN    = "isbn"
	FieldBarcode = "barcode"
)

type Service struct {
	provider Provider
	logger   *slog.Logger
}

func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// LookupISBN validates the identifier and fetches a draft for it.
func (service *Service) LookupISBN(ctx context.Context, isbn string) (*Draft, error) {
	validator := &validate.Validator{}
	validator.Required(FieldISBN, isbn).ISBN(FieldISBN, isbn)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	draft, err := service.provider.LookupISBN(ctx, normalizeISBN(isbn))
	if err != nil {
		return nil, err
	}

	service.logger.Info("catalog_lookup", slog.String("isbn", draft.ISBN))
	return draft, nil
}

// ResolveBarcode treats a scanned barcode as an ISBN and looks it up.
//
// Book barcodes are EAN-13 codes carrying the ISBN-13, so anything that fails
// ISBN validation was not a book barcode in the first place.
func (service *Service) ResolveBarcode(ctx context.Context, barcode string) (*Draft, error) {
	validator := &validate.Validator{}
	validator.Required(FieldBarcode, barcode).ISBN(FieldBarcode, barcode)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.LookupISBN(ctx, barcode)
}

// SearchBooks runs a paged free-text catalog query.
func (service *Service) SearchBooks(ctx context.Context, query string, page, pageSize int) ([]Draft, int, error) {
	return service.provider.Search(ctx, query, page, pageSize)
}

// normalizeISBN strips the separators users and scanners tend to include.
func normalizeISBN(isbn string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(isbn)
}
