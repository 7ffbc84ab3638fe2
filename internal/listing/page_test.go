package listing

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_PagesPartitionTheCollection(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 9))
	for n := 0; n <= 30; n++ {
		items := SortArtworks(randomArtworks(r, n), SortLikes)
		for size := 1; size <= 13; size++ {
			pages := TotalPages(len(items), size)

			var joined []string
			for p := 1; p <= pages; p++ {
				page := Paginate(items, p, size)
				require.NotEmpty(t, page, "n=%d size=%d page=%d", n, size, p)
				require.LessOrEqual(t, len(page), size)
				for _, a := range page {
					joined = append(joined, a.ID)
				}
			}
			assert.Empty(t, Paginate(items, pages+1, size))

			want := make([]string, len(items))
			for i := range items {
				want[i] = items[i].ID
			}
			if len(want) == 0 {
				want = nil
			}
			require.Equal(t, want, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_Unpaged(t *testing.T) {
	items := randomArtworks(rand.New(rand.NewPCG(1, 1)), 30)

	assert.Equal(t, 1, TotalPages(len(items), 0))
	assert.Len(t, Paginate(items, 1, 0), 30)
	assert.Empty(t, Paginate(items, 2, 0))
	assert.Equal(t, 0, TotalPages(0, 0))
}

func TestPageWindow(t *testing.T) {
	render := func(items []PageItem) []any {
		var out []any
		for _, it := range items {
			switch {
			case it.Ellipsis:
				out = append(out, "...")
			case it.Current:
				out = append(out, []int{it.Number})
			default:
				out = append(out, it.Number)
			}
		}
		return out
	}

	tests := []struct {
		current, total int
		want           []any
	}{
		{1, 0, nil},
		{1, 1, []any{[]int{1}}},
		{1, 3, []any{[]int{1}, 2, 3}},
		{1, 10, []any{[]int{1}, 2, "...", 10}},
		{5, 10, []any{1, "...", 4, []int{5}, 6, "...", 10}},
		{3, 10, []any{1, 2, []int{3}, 4, "...", 10}},
		{10, 10, []any{1, "...", 9, []int{10}}},
		{4, 5, []any{1, "...", 3, []int{4}, 5}},
		{99, 4, []any{1, "...", 3, []int{4}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render(PageWindow(tt.current, tt.total)), "current=%d total=%d", tt.current, tt.total)
	}
}
