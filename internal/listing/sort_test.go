package listing

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/model"
)

func titles(items []model.Artwork) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Title
	}
	return out
}

func randomArtworks(r *rand.Rand, n int) []model.Artwork {
	items := make([]model.Artwork, n)
	for i := range items {
		items[i] = model.Artwork{
			ID:    fmt.Sprintf("id-%03d", i),
			Title: fmt.Sprintf("T%d", r.IntN(10)),
			Likes: r.IntN(5),
		}
		if r.IntN(3) > 0 {
			items[i].CreatedAt = time.Date(2024, 1, 1+r.IntN(20), 0, 0, 0, 0, time.UTC)
		}
	}
	return items
}

func TestSortArtworks_Scenario(t *testing.T) {
	items := []model.Artwork{
		{ID: "b", Title: "B", Likes: 2},
		{ID: "a", Title: "A", Likes: 5},
	}

	assert.Equal(t, []string{"A", "B"}, titles(SortArtworks(items, SortLikes)))
	assert.Equal(t, []string{"A", "B"}, titles(SortArtworks(items, SortTitle)))
	// Equal (absent) timestamps fall back to ID order.
	assert.Equal(t, []string{"A", "B"}, titles(SortArtworks(items, SortRecent)))
	// Input untouched.
	assert.Equal(t, []string{"B", "A"}, titles(items))
}

func TestSortArtworks_LikesDescendingForAllAdjacentPairs(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		sorted := SortArtworks(randomArtworks(r, 40), SortLikes)
		for i := 1; i < len(sorted); i++ {
			require.GreaterOrEqual(t, sorted[i-1].Likes, sorted[i].Likes)
			if sorted[i-1].Likes == sorted[i].Likes {
				require.Less(t, sorted[i-1].ID, sorted[i].ID)
			}
		}
	}
}

func TestSortArtworks_RecentTreatsMissingAsEpoch(t *testing.T) {
	items := []model.Artwork{
		{ID: "1", Title: "undated"},
		{ID: "2", Title: "old", CreatedAt: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Title: "new", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Title: "pre-epoch", CreatedAt: time.Date(1969, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, []string{"new", "old", "undated", "pre-epoch"}, titles(SortArtworks(items, SortRecent)))
}

func TestSortArtworks_TitleIsLocaleAware(t *testing.T) {
	items := []model.Artwork{
		{ID: "1", Title: "zebra"},
		{ID: "2", Title: "Éclair"},
		{ID: "3", Title: "apple"},
		{ID: "4", Title: "Banana"},
	}

	assert.Equal(t, []string{"apple", "Banana", "Éclair", "zebra"}, titles(SortArtworks(items, SortTitle)))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortLikes, ParseSortKey("likes"))
	assert.Equal(t, SortTitle, ParseSortKey(" Title "))
	assert.Equal(t, SortRecent, ParseSortKey(""))
	assert.Equal(t, SortRecent, ParseSortKey("price"))
}

func TestVisibleTo(t *testing.T) {
	items := []model.Artwork{
		{ID: "1", Visibility: model.VisibilityPublic, UserEmail: "a@x.io"},
		{ID: "2", Visibility: model.VisibilityPrivate, UserEmail: "a@x.io"},
		{ID: "3", Visibility: model.VisibilityPrivate, UserEmail: "b@x.io"},
	}

	assert.Len(t, VisibleTo(items, ""), 1)
	assert.Len(t, VisibleTo(items, "a@x.io"), 2)
	assert.Len(t, items, 3)
}

func TestMatch(t *testing.T) {
	items := []model.Artwork{
		{ID: "1", Title: "Blue Harbor", Category: model.CategoryPainting},
		{ID: "2", Title: "Night", ArtistName: "Ada Blue", Category: model.CategoryPhotography},
		{ID: "3", Title: "Clay", Category: model.CategorySculpture},
	}

	assert.Len(t, Match(items, Filter{Category: model.CategoryAll}), 3)
	assert.Len(t, Match(items, Filter{Search: "BLUE", Category: model.CategoryAll}), 2)

	got := Match(items, Filter{Search: "blue", Category: model.CategoryPhotography})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
