package shelf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheepark/chaekdam/internal/shelf"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func sampleShelf() []shelf.Book {
	return []shelf.Book{
		{ID: "b1", Title: "정보보안개론", Author: "김철수", Category: "IT", ReadStatus: shelf.StatusFinished, Rating: 5, AddedAt: day(0)},
		{ID: "b2", Title: "미분적분학", Author: "이영희", Category: "수학", ReadStatus: shelf.StatusInProgress, Rating: 3, AddedAt: day(1)},
		{ID: "b3", Title: "Clean Code", Author: "Robert C. Martin", Category: "IT", ReadStatus: shelf.StatusNotStarted, Rating: 0, AddedAt: day(2)},
		{ID: "b4", Title: "가벼운 습관", Author: "박민준", Category: "자기계발", ReadStatus: shelf.StatusFinished, Rating: 4, AddedAt: day(3)},
		{ID: "b5", Title: "나무의 시간", Author: "정다운", Category: "에세이", ReadStatus: shelf.StatusInProgress, Rating: 4, AddedAt: day(4)},
	}
}

func ids(books []shelf.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestApplyDefaultView(t *testing.T) {
	got := shelf.Apply(sampleShelf(), shelf.ViewState{})

	// No filters, newest first.
	assert.Equal(t, []string{"b5", "b4", "b3", "b2", "b1"}, ids(got))
}

func TestApplyFacets(t *testing.T) {
	tests := []struct {
		name  string
		state shelf.ViewState
		want  []string
	}{
		{"category", shelf.ViewState{Category: "IT"}, []string{"b3", "b1"}},
		{"status", shelf.ViewState{Status: string(shelf.StatusFinished)}, []string{"b4", "b1"}},
		{"category_and_status", shelf.ViewState{Category: "IT", Status: string(shelf.StatusFinished)}, []string{"b1"}},
		{"all_sentinel_is_noop", shelf.ViewState{Category: shelf.FacetAll, Status: shelf.FacetAll}, []string{"b5", "b4", "b3", "b2", "b1"}},
		{"no_match", shelf.ViewState{Category: "역사"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(shelf.Apply(sampleShelf(), tt.state)))
		})
	}
}

func TestApplyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title_substring", "보안", []string{"b1"}},
		{"author", "robert", []string{"b3"}},
		{"category", "에세이", []string{"b5"}},
		{"case_insensitive", "CLEAN", []string{"b3"}},
		{"empty_matches_all", "", []string{"b5", "b4", "b3", "b2", "b1"}},
		{"no_match", "파이썬", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shelf.Apply(sampleShelf(), shelf.ViewState{Query: tt.query})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplySort(t *testing.T) {
	tests := []struct {
		name string
		sort shelf.SortKey
		want []string
	}{
		// Hangul shelves before Latin: 가벼운 < 나무 < 미분 < 정보 < Clean
		{"title", shelf.SortTitle, []string{"b4", "b5", "b2", "b1", "b3"}},
		{"author", shelf.SortAuthor, []string{"b1", "b4", "b2", "b5", "b3"}},
		{"recency_newest_first", shelf.SortRecency, []string{"b5", "b4", "b3", "b2", "b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shelf.Apply(sampleShelf(), shelf.ViewState{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplySortHangulBeforeLatin(t *testing.T) {
	books := []shelf.Book{
		{ID: "l2", Title: "Refactoring"},
		{ID: "k3", Title: "다시, 책으로"},
		{ID: "l1", Title: "Clean Architecture"},
		{ID: "k1", Title: "가을의 문장"},
		{ID: "k2", Title: "나의 서재"},
	}

	got := shelf.Apply(books, shelf.ViewState{Sort: shelf.SortTitle})

	// The Hangul block leads in 가 < 나 < 다 order; Latin titles follow,
	// collated among themselves.
	assert.Equal(t, []string{"k1", "k2", "k3", "l1", "l2"}, ids(got))
}

func TestApplySortRating(t *testing.T) {
	got := shelf.Apply(sampleShelf(), shelf.ViewState{Sort: shelf.SortRating})

	// Highest first; ties keep input order; the unrated book lands last.
	assert.Equal(t, []string{"b1", "b4", "b5", "b2", "b3"}, ids(got))
}

func TestApplySortStability(t *testing.T) {
	books := []shelf.Book{
		{ID: "x1", Title: "같은 제목", AddedAt: day(0)},
		{ID: "x2", Title: "같은 제목", AddedAt: day(1)},
		{ID: "x3", Title: "같은 제목", AddedAt: day(2)},
	}

	got := shelf.Apply(books, shelf.ViewState{Sort: shelf.SortTitle})

	assert.Equal(t, []string{"x1", "x2", "x3"}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	books := sampleShelf()

	shelf.Apply(books, shelf.ViewState{Sort: shelf.SortTitle, Query: "보안"})

	assert.Equal(t, []string{"b1", "b2", "b3", "b4", "b5"}, ids(books))
}

func TestApplyComposedView(t *testing.T) {
	books := sampleShelf()
	books = append(books, shelf.Book{
		ID: "b6", Title: "IT 트렌드 2026", Author: "최수진", Category: "IT",
		ReadStatus: shelf.StatusFinished, Rating: 2, AddedAt: day(5),
	})

	got := shelf.Apply(books, shelf.ViewState{
		Category: "IT",
		Status:   string(shelf.StatusFinished),
		Sort:     shelf.SortRating,
	})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"b1", "b6"}, ids(got))
}

func TestApplyEmptyShelf(t *testing.T) {
	got := shelf.Apply(nil, shelf.ViewState{Query: "보안"})

	require.NotNil(t, got)
	assert.Empty(t, got)
}
