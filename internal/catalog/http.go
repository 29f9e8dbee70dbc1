package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/daheepark/chaekdam/internal/platform/request"
	"github.com/daheepark/chaekdam/internal/platform/respond"
	"github.com/daheepark/chaekdam/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the book lookup endpoints under /books.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.searchBooks)
	router.Get("/isbn/{isbn}", handler.lookupISBN)
}

// RegisterBarcodeRoute mounts POST /barcode on the given router. The scanner
// page posts there directly, outside the /books subtree.
func (handler *Handler) RegisterBarcodeRoute(router chi.Router) {
	router.Post("/barcode", handler.resolveBarcode)
}

func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query().Get("q")

	drafts, total, err := handler.service.SearchBooks(request.Context(), query, params.Page, params.PageSize)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, drafts, pagination.NewMeta(params.Page, params.PageSize, total))
}

func (handler *Handler) lookupISBN(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn")

	draft, err := handler.service.LookupISBN(request.Context(), isbn)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

type barcodeRequest struct {
	Barcode string `json:"barcode"`
}

func (handler *Handler) resolveBarcode(writer http.ResponseWriter, request *http.Request) {
	var input barcodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.ResolveBarcode(request.Context(), input.Barcode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}
