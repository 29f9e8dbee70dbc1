package shelf

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daheepark/chaekdam/pkg/slice"
	"github.com/daheepark/chaekdam/pkg/textfold"
)

// SortKey selects the ordering of a shelf view.
type SortKey string

const (
	SortRecency  SortKey = "recency"
	SortTitle    SortKey = "title"
	SortAuthor   SortKey = "author"
	SortCategory SortKey = "category"
	SortRating   SortKey = "rating"
)

// FacetAll is the sentinel facet value meaning "no restriction".
const FacetAll = "all"

// ViewState captures the filter and ordering controls of a shelf view.
// The zero value means: no query, all categories, all statuses, newest first.
type ViewState struct {
	Query    string
	Category string
	Status   string
	Sort     SortKey
}

// Apply evaluates a view over a shelf snapshot and returns a new ordered
// slice. The input is never mutated and the result is never nil.
//
// Filters compose with AND semantics: a book survives only if it matches the
// free-text query and the category facet and the status facet. Ordering is
// stable, so books that compare equal keep their relative input order.
func Apply(books []Book, state ViewState) []Book {
	result := slice.Filter(books, state.matches)
	if result == nil {
		result = []Book{}
	}

	slices.SortStableFunc(result, state.comparator())

	return result
}

func (s ViewState) matches(b Book) bool {
	if !facetMatches(s.Category, b.Category) {
		return false
	}
	if !facetMatches(s.Status, string(b.ReadStatus)) {
		return false
	}
	if s.Query == "" {
		return true
	}

	return textfold.Contains(b.Title, s.Query) ||
		textfold.Contains(b.Author, s.Query) ||
		textfold.Contains(b.Category, s.Query)
}

func facetMatches(facet, value string) bool {
	return facet == "" || facet == FacetAll || facet == value
}

func (s ViewState) comparator() func(a, b Book) int {
	switch s.Sort {
	case SortTitle:
		return byText(func(b Book) string { return b.Title })
	case SortAuthor:
		return byText(func(b Book) string { return b.Author })
	case SortCategory:
		return byText(func(b Book) string { return b.Category })
	case SortRating:
		// Descending; an unrated book (0) is the minimum, so it lands last.
		return func(a, b Book) int { return b.Rating - a.Rating }
	default:
		// Newest first. The zero time is the minimum, so records that never
		// got a timestamp sink to the end.
		return func(a, b Book) int { return b.AddedAt.Compare(a.AddedAt) }
	}
}

// byText builds a collation-aware comparator over a string field.
//
// Hangul values shelve before Latin ones, the way a Korean bookstore arranges
// mixed stock, and each block follows Korean dictionary order (가 < 나 < 다).
// Collators are not safe for concurrent use, so one is created per comparison
// run rather than shared.
func byText(key func(Book) string) func(a, b Book) int {
	c := collate.New(language.Korean)
	return func(a, b Book) int {
		left, right := key(a), key(b)
		if d := scriptRank(left) - scriptRank(right); d != 0 {
			return d
		}
		return c.CompareString(left, right)
	}
}

// scriptRank groups strings by leading script: Hangul first, everything else
// after. The collator alone would order Latin text before Hangul.
func scriptRank(value string) int {
	r, _ := utf8.DecodeRuneInString(value)
	if unicode.Is(unicode.Hangul, r) {
		return 0
	}
	return 1
}
