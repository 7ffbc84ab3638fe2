// Package listing holds the search/filter/sort/paginate logic shared by every
// artwork list screen. The backend filters by search text and category; sorting
// and paging happen here, in memory, on the fetched collection.
package listing

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/artshowcase/showcase/internal/model"
)

const (
	DefaultPageSize = 12
	DefaultDebounce = 300 * time.Millisecond
)

// Options configures one listing screen.
type Options struct {
	PageSize         int // 0 means unpaged
	Sortable         bool
	ShowOwnerActions bool
	Debounce         time.Duration
}

var (
	ExploreOptions = Options{PageSize: DefaultPageSize, Sortable: true, Debounce: DefaultDebounce}
	GalleryOptions = Options{ShowOwnerActions: true, Debounce: DefaultDebounce}
	ArtistOptions  = Options{PageSize: DefaultPageSize, Sortable: true, Debounce: DefaultDebounce}
)

// Filter is the part of the state that is sent to the backend.
type Filter struct {
	Search   string
	Category model.Category
}

// State is the view state of a listing screen. Search or category changes
// trigger a new fetch; every filter or sort change returns to page 1.
type State struct {
	Search   string
	Category model.Category
	Sort     SortKey
	Page     int
}

func NewState() State {
	return State{
		Category: model.CategoryAll,
		Sort:     SortRecent,
		Page:     1,
	}
}

func (s State) Filter() Filter {
	return Filter{Search: s.Search, Category: s.Category}
}

// HasFilters reports whether search text or a category narrows the list.
func (s State) HasFilters() bool {
	return s.Search != "" || !s.Category.IsAll()
}

// SetSearch reports whether the search text changed (and a fetch is due).
func (s *State) SetSearch(q string) bool {
	if q == s.Search {
		return false
	}
	s.Search = q
	s.Page = 1
	return true
}

// SetCategory reports whether the category changed (and a fetch is due).
func (s *State) SetCategory(c model.Category) bool {
	if c == "" {
		c = model.CategoryAll
	}
	if c == s.Category {
		return false
	}
	s.Category = c
	s.Page = 1
	return true
}

// SetSort changes the local ordering only; no fetch is needed.
func (s *State) SetSort(k SortKey) {
	if k == s.Sort {
		return
	}
	s.Sort = k
	s.Page = 1
}

func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.Page = n
}

// ClearFilters resets search and category and reports whether a fetch is due.
func (s *State) ClearFilters() bool {
	a := s.SetSearch("")
	b := s.SetCategory(model.CategoryAll)
	return a || b
}

// StateFromQuery reads q, category, sort and page from URL parameters.
// Unknown values fall back to the defaults.
func StateFromQuery(v url.Values) State {
	s := NewState()
	s.Search = strings.TrimSpace(v.Get("q"))
	if c, ok := model.ParseCategory(v.Get("category")); ok {
		s.Category = c
	}
	s.Sort = ParseSortKey(v.Get("sort"))
	if n, err := strconv.Atoi(v.Get("page")); err == nil && n > 0 {
		s.Page = n
	}
	return s
}

// Query encodes s as URL parameters, omitting defaults.
func (s State) Query() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set("q", s.Search)
	}
	if !s.Category.IsAll() {
		v.Set("category", string(s.Category))
	}
	if s.Sort != "" && s.Sort != SortRecent {
		v.Set("sort", string(s.Sort))
	}
	if s.Page > 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	return v
}

// PageQuery is Query for the same state on page n.
func (s State) PageQuery(n int) url.Values {
	s.Page = n
	return s.Query()
}

// View is what a listing screen renders.
type View struct {
	State   State
	Options Options

	Items      []model.Artwork // the current page
	Total      int
	Page       int // State.Page clamped to the available pages
	TotalPages int
	Start      int // 1-based index of the first item shown, 0 when empty
	End        int
	Window     []PageItem

	Loading bool
	Err     error
}

// Empty reports whether there is nothing to show once loading has finished.
func (v View) Empty() bool {
	return !v.Loading && v.Total == 0
}

// ShowPagination reports whether page controls should be rendered.
func (v View) ShowPagination() bool {
	return !v.Empty() && v.TotalPages > 1
}

func (v View) HasPrev() bool { return v.Page > 1 }
func (v View) HasNext() bool { return v.Page < v.TotalPages }

// Refine sorts (when the screen is sortable) and pages items for display.
func Refine(items []model.Artwork, s State, opts Options) View {
	sorted := items
	if opts.Sortable {
		sorted = SortArtworks(items, s.Sort)
	}

	total := len(sorted)
	pages := TotalPages(total, opts.PageSize)
	page := ClampPage(s.Page, pages)
	pageItems := Paginate(sorted, page, opts.PageSize)

	v := View{
		State:      s,
		Options:    opts,
		Items:      pageItems,
		Total:      total,
		Page:       page,
		TotalPages: pages,
		Window:     PageWindow(page, pages),
	}
	if len(pageItems) > 0 {
		v.Start = (page-1)*max(opts.PageSize, 0) + 1
		v.End = v.Start + len(pageItems) - 1
	}
	return v
}
