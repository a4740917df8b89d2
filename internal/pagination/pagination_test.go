package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_ThirteenItems(t *testing.T) {
	t.Parallel()

	page1 := Paginate(13, "1", 10)
	assert.Equal(t, 1, page1.Number)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 0, page1.Offset())
	assert.Equal(t, 10, page1.Limit())
	assert.False(t, page1.HasPrevious())
	assert.True(t, page1.HasNext())

	page2 := Paginate(13, "2", 10)
	assert.Equal(t, 2, page2.Number)
	assert.Equal(t, 10, page2.Offset())
	assert.True(t, page2.HasPrevious())
	assert.False(t, page2.HasNext())

	// Requesting page 3 of 2 clamps to the last page instead of erroring.
	page3 := Paginate(13, "3", 10)
	assert.Equal(t, 2, page3.Number)
	assert.Equal(t, 10, page3.Offset())
}

func TestPaginate_FallbackBehavior(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totalItems int
		pageParam  string
		wantNumber int
		wantPages  int
	}{
		{"missing param defaults to first page", 25, "", 1, 3},
		{"non-numeric param defaults to first page", 25, "abc", 1, 3},
		{"zero defaults to first page", 25, "0", 1, 3},
		{"negative defaults to first page", 25, "-4", 1, 3},
		{"overshoot clamps to last page", 25, "99", 3, 3},
		{"empty collection has one empty page", 0, "5", 1, 1},
		{"exact multiple has no partial page", 20, "2", 2, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page := Paginate(tt.totalItems, tt.pageParam, 10)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestPaginate_NeighborNumbers(t *testing.T) {
	t.Parallel()

	middle := Paginate(30, "2", 10)
	assert.Equal(t, 1, middle.PreviousNumber())
	assert.Equal(t, 3, middle.NextNumber())

	first := Paginate(30, "1", 10)
	assert.Equal(t, 1, first.PreviousNumber())

	last := Paginate(30, "3", 10)
	assert.Equal(t, 3, last.NextNumber())
}

func TestPaginate_DefaultPerPage(t *testing.T) {
	t.Parallel()

	page := Paginate(13, "1", 0)
	assert.Equal(t, DefaultPerPage, page.PerPage)
	assert.Equal(t, 2, page.TotalPages)
}
