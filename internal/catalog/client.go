package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/daheepark/chaekdam/internal/platform/apperr"
	"github.com/daheepark/chaekdam/internal/platform/constants"
	"github.com/daheepark/chaekdam/pkg/pagination"
	"github.com/daheepark/chaekdam/pkg/slice"
)

// Client talks to an Open Library compatible catalog API.
//
// Requests run through a client-side rate limiter so a burst of barcode scans
// cannot get the whole deployment throttled by the upstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: constants.CatalogRequestTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(constants.CatalogRequestsPerSecond), constants.CatalogRequestBurst),
	}
}

// searchDoc is one result row of the upstream search.json shape.
type searchDoc struct {
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	ISBN             []string `json:"isbn"`
	FirstPublishYear int      `json:"first_publish_year"`
	Subjects         []string `json:"subject"`
	CoverID          int      `json:"cover_i"`
}

// searchResponse matches the upstream search.json shape.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

// bookDetails matches one entry of api/books?jscmd=data.
type bookDetails struct {
	Title       string `json:"title"`
	PublishDate string `json:"publish_date"`
	Notes       string `json:"notes"`
	Publishers  []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Subjects []struct {
		Name string `json:"name"`
	} `json:"subjects"`
	Cover struct {
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover"`
}

// LookupISBN fetches the catalog record for one ISBN.
//
// A missing record maps to apperr.NotFound; any transport failure or upstream
// 5xx maps to apperr.Network.
func (client *Client) LookupISBN(ctx context.Context, isbn string) (*Draft, error) {
	endpoint := fmt.Sprintf("%s/api/books?bibkeys=ISBN:%s&jscmd=data&format=json",
		client.baseURL, url.QueryEscape(isbn))

	var payload map[string]bookDetails
	if err := client.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	details, found := payload["ISBN:"+isbn]
	if !found {
		return nil, apperr.NotFound("Book")
	}

	draft := &Draft{
		ISBN:        isbn,
		Title:       details.Title,
		PublishDate: details.PublishDate,
		Description: details.Notes,
		Thumbnail:   details.Cover.Medium,
	}
	if draft.Thumbnail == "" {
		draft.Thumbnail = details.Cover.Large
	}
	if len(details.Authors) > 0 {
		draft.Author = details.Authors[0].Name
	}
	if len(details.Publishers) > 0 {
		draft.Publisher = details.Publishers[0].Name
	}
	for _, subject := range details.Subjects {
		draft.Categories = append(draft.Categories, subject.Name)
		if len(draft.Categories) == constants.CatalogMaxCategories {
			break
		}
	}

	return draft, nil
}

// Search runs a paged free-text query against the catalog.
//
// The upstream pages with limit/offset, so page numbers are translated here.
// An empty query browses the whole catalog.
func (client *Client) Search(ctx context.Context, query string, page, pageSize int) ([]Draft, int, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		term = "*"
	}

	offset := pagination.Params{Page: page, PageSize: pageSize}.Offset()
	endpoint := fmt.Sprintf("%s/search.json?q=%s&fields=title,author_name,isbn,first_publish_year,subject,cover_i&limit=%d&offset=%d",
		client.baseURL, url.QueryEscape(term), pageSize, offset)

	var payload searchResponse
	if err := client.get(ctx, endpoint, &payload); err != nil {
		return nil, 0, err
	}

	drafts := slice.Map(payload.Docs, draftFromDoc)
	if drafts == nil {
		drafts = []Draft{}
	}

	return drafts, payload.NumFound, nil
}

// draftFromDoc maps a sparse search row onto a Draft.
func draftFromDoc(doc searchDoc) Draft {
	draft := Draft{
		Title:      doc.Title,
		Categories: doc.Subjects,
	}
	if len(doc.AuthorNames) > 0 {
		draft.Author = doc.AuthorNames[0]
	}
	if len(doc.ISBN) > 0 {
		draft.ISBN = doc.ISBN[0]
	}
	if doc.FirstPublishYear > 0 {
		draft.PublishDate = fmt.Sprintf("%d", doc.FirstPublishYear)
	}
	if doc.CoverID > 0 {
		draft.Thumbnail = fmt.Sprintf("%s/b/id/%d-M.jpg", constants.CatalogCoverBaseURL, doc.CoverID)
	}
	if len(draft.Categories) > constants.CatalogMaxCategories {
		draft.Categories = draft.Categories[:constants.CatalogMaxCategories]
	}
	return draft
}

func (client *Client) get(ctx context.Context, endpoint string, target interface{}) error {
	if err := client.limiter.Wait(ctx); err != nil {
		return apperr.Network(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	request.Header.Set("User-Agent", constants.CatalogUserAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return apperr.Network(err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return apperr.NotFound("Book")
	case response.StatusCode != http.StatusOK:
		return apperr.Network(fmt.Errorf("catalog responded with status %d", response.StatusCode))
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return apperr.Network(fmt.Errorf("malformed catalog response: %w", err))
	}
	return nil
}
