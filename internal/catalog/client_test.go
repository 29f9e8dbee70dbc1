package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheepark/chaekdam/internal/catalog"
	"github.com/daheepark/chaekdam/internal/platform/apperr"
)

const lookupFixture = `{
	"ISBN:9788966261024": {
		"title": "정보보안개론",
		"publish_date": "2019",
		"publishers": [{"name": "한빛아카데미"}],
		"authors": [{"name": "김철수"}],
		"subjects": [{"name": "Computer security"}, {"name": "IT"}],
		"cover": {"medium": "https://covers.example.org/b/id/101-M.jpg"}
	}
}`

const searchFixture = `{
	"numFound": 42,
	"docs": [
		{
			"title": "The Go Programming Language",
			"author_name": ["Alan A. A. Donovan", "Brian W. Kernighan"],
			"isbn": ["9780134190440"],
			"first_publish_year": 2015,
			"subject": ["Programming"],
			"cover_i": 202
		},
		{
			"title": "미분적분학",
			"author_name": ["이영희"]
		}
	]
}`

func TestLookupISBN(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/books", request.URL.Path)
		assert.Equal(t, "ISBN:9788966261024", request.URL.Query().Get("bibkeys"))
		writer.Write([]byte(lookupFixture))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL)
	draft, err := client.LookupISBN(context.Background(), "9788966261024")

	require.NoError(t, err)
	assert.Equal(t, "9788966261024", draft.ISBN)
	assert.Equal(t, "정보보안개론", draft.Title)
	assert.Equal(t, "김철수", draft.Author)
	assert.Equal(t, "한빛아카데미", draft.Publisher)
	assert.Equal(t, "2019", draft.PublishDate)
	assert.Equal(t, []string{"Computer security", "IT"}, draft.Categories)
	assert.Equal(t, "https://covers.example.org/b/id/101-M.jpg", draft.Thumbnail)
}

func TestLookupISBNUnknownRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		// The upstream answers 200 with an empty object for unknown ISBNs.
		writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL)
	_, err := client.LookupISBN(context.Background(), "9788966261024")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestLookupISBNUpstreamDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL)
	_, err := client.LookupISBN(context.Background(), "9788966261024")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NETWORK_ERROR", appError.Code)
}

func TestLookupISBNUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse all connections

	client := catalog.NewClient(server.URL)
	_, err := client.LookupISBN(context.Background(), "9788966261024")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NETWORK_ERROR", appError.Code)
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/search.json", request.URL.Path)
		assert.Equal(t, "go", request.URL.Query().Get("q"))
		assert.Equal(t, "10", request.URL.Query().Get("limit"))
		assert.Equal(t, "10", request.URL.Query().Get("offset"))
		writer.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL)
	drafts, total, err := client.Search(context.Background(), "go", 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, drafts, 2)

	assert.Equal(t, "The Go Programming Language", drafts[0].Title)
	assert.Equal(t, "Alan A. A. Donovan", drafts[0].Author)
	assert.Equal(t, "9780134190440", drafts[0].ISBN)
	assert.Equal(t, "2015", drafts[0].PublishDate)
	assert.Contains(t, drafts[0].Thumbnail, "/b/id/202-M.jpg")

	// Sparse docs still map, with empty optional fields.
	assert.Equal(t, "미분적분학", drafts[1].Title)
	assert.Empty(t, drafts[1].ISBN)
	assert.Empty(t, drafts[1].Thumbnail)
}

func TestSearchEmptyQueryBrowsesCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "*", request.URL.Query().Get("q"))
		writer.Write([]byte(`{"numFound": 0, "docs": []}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL)
	drafts, total, err := client.Search(context.Background(), "  ", 1, 10)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, drafts)
}
