package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artshowcase/showcase/internal/model"
)

func TestState_FilterChangesResetPage(t *testing.T) {
	s := NewState()
	s.SetPage(4)

	assert.True(t, s.SetCategory(model.CategoryPainting))
	assert.Equal(t, 1, s.Page)

	s.SetPage(3)
	assert.True(t, s.SetCategory(model.CategoryAll))
	assert.Equal(t, 1, s.Page, "switching back must not resurrect page 3")

	s.SetPage(2)
	assert.True(t, s.SetSearch("sun"))
	assert.Equal(t, 1, s.Page)

	s.SetPage(2)
	s.SetSort(SortTitle)
	assert.Equal(t, 1, s.Page)

	s.SetPage(2)
	assert.False(t, s.SetSearch("sun"), "same text is not a change")
	assert.Equal(t, 2, s.Page)
}

func TestState_ClearFilters(t *testing.T) {
	s := NewState()
	assert.False(t, s.ClearFilters())

	s.SetSearch("x")
	s.SetCategory(model.CategoryDrawing)
	assert.True(t, s.ClearFilters())
	assert.Equal(t, "", s.Search)
	assert.Equal(t, model.CategoryAll, s.Category)
	assert.False(t, s.HasFilters())
}

func TestState_QueryRoundTrip(t *testing.T) {
	s := StateFromQuery(url.Values{
		"q":        {"  blue  "},
		"category": {"digital art"},
		"sort":     {"likes"},
		"page":     {"3"},
	})

	assert.Equal(t, "blue", s.Search)
	assert.Equal(t, model.CategoryDigitalArt, s.Category)
	assert.Equal(t, SortLikes, s.Sort)
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, "category=Digital+Art&page=3&q=blue&sort=likes", s.Query().Encode())
	assert.Equal(t, "category=Digital+Art&q=blue&sort=likes", s.PageQuery(1).Encode())

	d := StateFromQuery(url.Values{"category": {"bogus"}, "page": {"-2"}})
	assert.Equal(t, NewState(), d)
	assert.Empty(t, d.Query())
}

func TestRefine_EmptyHasNoPagination(t *testing.T) {
	v := Refine(nil, NewState(), ExploreOptions)

	assert.True(t, v.Empty())
	assert.False(t, v.ShowPagination())
	assert.Equal(t, 0, v.Start)
	assert.Empty(t, v.Window)
}

func TestRefine_PagesAndRange(t *testing.T) {
	items := make([]model.Artwork, 30)
	for i := range items {
		items[i] = model.Artwork{ID: string(rune('a' + i)), Likes: i}
	}

	s := NewState()
	s.Sort = SortLikes
	s.Page = 3
	v := Refine(items, s, ExploreOptions)

	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, 25, v.Start)
	assert.Equal(t, 30, v.End)
	assert.Len(t, v.Items, 6)
	assert.True(t, v.ShowPagination())
	assert.True(t, v.HasPrev())
	assert.False(t, v.HasNext())
	assert.Equal(t, 5, v.Items[0].Likes)

	s.Page = 9
	assert.Equal(t, 3, Refine(items, s, ExploreOptions).Page)
}

func TestRefine_UnsortableKeepsServerOrder(t *testing.T) {
	items := []model.Artwork{{ID: "1", Likes: 1}, {ID: "2", Likes: 9}}
	s := NewState()
	s.Sort = SortLikes

	v := Refine(items, s, GalleryOptions)
	assert.Equal(t, "1", v.Items[0].ID)
	assert.Equal(t, 1, v.TotalPages)
	assert.False(t, v.ShowPagination())
}
